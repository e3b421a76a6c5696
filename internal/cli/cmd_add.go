package cli

import (
	"strings"

	"tdo/internal/task"
)

const addHelp = `  add <title>            Add a new task`

func cmdAdd(o *IO, cfg task.Config, args []string) error {
	// Handle --help/-h
	if hasHelpFlag(args) {
		o.Println("Usage: tdo add <title>")
		o.Println("")
		o.Println("Add a new open task. Everything after 'add' becomes the title.")
		o.Println("Prints the ID of the created task.")

		return nil
	}

	// Reject blank titles before touching the file
	title, err := task.ValidateTitle(strings.Join(args, " "))
	if err != nil {
		return err
	}

	st, openErr := openStore(o, cfg)
	if openErr != nil {
		return openErr
	}

	created, addErr := st.Add(title)
	if addErr != nil {
		return addErr
	}

	o.Println(created.ID)

	return nil
}
