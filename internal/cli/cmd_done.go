package cli

import (
	"tdo/internal/task"
)

const doneHelp = `  done <id>              Toggle task completion`

func cmdDone(o *IO, cfg task.Config, args []string) error {
	// Handle --help/-h
	if hasHelpFlag(args) {
		o.Println("Usage: tdo done <id>")
		o.Println("")
		o.Println("Toggle completion. Completing a task stamps the completion time;")
		o.Println("running done again reopens it and clears the stamp.")

		return nil
	}

	id, err := parseID(args)
	if err != nil {
		return err
	}

	st, openErr := openStore(o, cfg)
	if openErr != nil {
		return openErr
	}

	toggled, toggleErr := st.Toggle(id)
	if toggleErr != nil {
		return toggleErr
	}

	if toggled.IsDone {
		o.Println("Done", toggled.ID)
	} else {
		o.Println("Reopened", toggled.ID)
	}

	return nil
}
