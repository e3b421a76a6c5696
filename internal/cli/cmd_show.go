package cli

import (
	"fmt"
	"strconv"
	"time"

	"tdo/internal/task"
)

const showHelp = `  show <id>              Show one task in detail`

func cmdShow(o *IO, cfg task.Config, args []string) error {
	// Handle --help/-h
	if hasHelpFlag(args) {
		o.Println("Usage: tdo show <id>")
		o.Println("")
		o.Println("Print every field of one task as key=value lines.")

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

	t, ok := st.Get(id)
	if !ok {
		return fmt.Errorf("%w: %d", task.ErrTaskNotFound, id)
	}

	printTaskDetail(o, t)

	return nil
}

func printTaskDetail(o *IO, t task.Task) {
	status := statusPending
	if t.IsDone {
		status = statusDone
	}

	o.Println("id=" + strconv.Itoa(t.ID))
	o.Println("title=" + t.Title)
	o.Println("status=" + status)
	o.Println("created=" + t.CreatedAt.Format(time.RFC3339))

	if t.CompletedAt != nil {
		o.Println("completed=" + t.CompletedAt.Format(time.RFC3339))
	}
}
