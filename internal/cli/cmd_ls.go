package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"tdo/internal/task"

	"github.com/mattn/go-runewidth"
	flag "github.com/spf13/pflag"
)

const lsHelp = `  ls [--status=X]        List tasks (pending first)`

// Status filter values.
const (
	statusPending = "pending"
	statusDone    = "done"
)

// maxTitleColumn caps the padded title column in aligned output.
const maxTitleColumn = 48

// lsOptions holds parsed ls command options.
type lsOptions struct {
	status string
}

func cmdLs(o *IO, cfg task.Config, args []string) error {
	// Handle --help/-h
	if hasHelpFlag(args) {
		printLsHelp(o)

		return nil
	}

	opts, err := parseLsFlags(args)
	if err != nil {
		return err
	}

	st, openErr := openStore(o, cfg)
	if openErr != nil {
		return openErr
	}

	tasks := filterTasks(task.SortedForDisplay(st.Tasks()), opts.status)

	for _, line := range formatTaskLines(tasks) {
		o.Println(line)
	}

	return nil
}

func parseLsFlags(args []string) (lsOptions, error) {
	flagSet := flag.NewFlagSet("ls", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	status := flagSet.String("status", "", "Filter by status")

	parseErr := flagSet.Parse(args)
	if parseErr != nil {
		return lsOptions{}, parseErr
	}

	// Validate status if provided
	if flagSet.Changed("status") {
		validateErr := validateStatusFlag(*status)
		if validateErr != nil {
			return lsOptions{}, validateErr
		}
	}

	return lsOptions{status: *status}, nil
}

func printLsHelp(o *IO) {
	o.Println("Usage: tdo ls [options]")
	o.Println("")
	o.Println("List tasks: pending first, then completed, by ascending ID within each group.")
	o.Println("")
	o.Println("Options:")
	o.Println("  --status=<status>    Filter by status (pending|done)")
}

var errInvalidStatus = errors.New("invalid status")

func validateStatusFlag(status string) error {
	if status != statusPending && status != statusDone {
		return fmt.Errorf("%w: %s (want pending|done)", errInvalidStatus, status)
	}

	return nil
}

// filterTasks keeps only tasks matching the status filter. An empty filter
// keeps everything.
func filterTasks(tasks []task.Task, status string) []task.Task {
	if status == "" {
		return tasks
	}

	wantDone := status == statusDone

	var out []task.Task

	for _, t := range tasks {
		if t.IsDone == wantDone {
			out = append(out, t)
		}
	}

	return out
}

// formatTaskLines renders tasks as aligned checklist lines. Completed tasks
// carry their completion date in a trailing column; titles are padded by
// display width so wide glyphs don't push the column around.
func formatTaskLines(tasks []task.Task) []string {
	idWidth := 0
	titleWidth := 0

	for _, t := range tasks {
		if w := len(strconv.Itoa(t.ID)); w > idWidth {
			idWidth = w
		}

		if w := runewidth.StringWidth(t.Title); w > titleWidth {
			titleWidth = w
		}
	}

	if titleWidth > maxTitleColumn {
		titleWidth = maxTitleColumn
	}

	lines := make([]string, 0, len(tasks))

	for _, t := range tasks {
		box := " "
		if t.IsDone {
			box = "x"
		}

		line := fmt.Sprintf("%*d. [%s] %s", idWidth, t.ID, box, t.Title)

		if t.IsDone && t.CompletedAt != nil {
			line = fmt.Sprintf("%*d. [%s] %s  done %s",
				idWidth, t.ID, box,
				runewidth.FillRight(t.Title, titleWidth),
				t.CompletedAt.Format("2006-01-02"))
		}

		lines = append(lines, line)
	}

	return lines
}
