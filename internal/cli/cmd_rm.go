package cli

import (
	"tdo/internal/task"
)

const rmHelp = `  rm <id>                Delete a task`

func cmdRm(o *IO, cfg task.Config, args []string) error {
	// Handle --help/-h
	if hasHelpFlag(args) {
		o.Println("Usage: tdo rm <id>")
		o.Println("")
		o.Println("Delete the task with the given ID. If hand edits introduced")
		o.Println("duplicate IDs, every task with that ID is removed.")

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

	deleteErr := st.Delete(id)
	if deleteErr != nil {
		return deleteErr
	}

	o.Println("Deleted", id)

	return nil
}
