package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tdo/internal/task"

	"github.com/peterh/liner"
)

const menuHelp = `  menu                   Start the interactive menu`

const menuPrompt = "tdo> "

// cmdMenu runs the interactive loop: one store for the whole session, every
// mutation persisted as it happens, plus one final save on the way out.
// Command errors (unknown ID, blank title) are printed and the loop
// continues; only I/O and parse failures of the backing file end the session.
func cmdMenu(in io.Reader, o *IO, cfg task.Config, env map[string]string) error {
	st, err := openStore(o, cfg)
	if err != nil {
		return err
	}

	reader := newLineReader(in, o, env)
	defer reader.Close()

	o.Println("tdo - to-do list (" + cfg.FileAbs + ")")
	o.Println("Type 'help' for available commands.")
	o.Println("")

	printMenuList(o, st)

	for {
		line, readErr := reader.Prompt(menuPrompt)
		if readErr != nil {
			if readErr == liner.ErrPromptAborted || readErr == io.EOF {
				o.Println("Bye!")

				break
			}

			return fmt.Errorf("reading input: %w", readErr)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		reader.AppendHistory(line)

		parts := strings.Fields(line)
		verb := strings.ToLower(parts[0])
		rest := strings.TrimSpace(strings.TrimPrefix(line, parts[0]))

		if quit := runMenuCommand(o, st, verb, parts[1:], rest); quit {
			o.Println("Bye!")

			break
		}
	}

	// Mutations already persisted; one final save before exit.
	return st.Save()
}

// runMenuCommand executes one menu verb. Returns true when the loop should
// exit.
func runMenuCommand(o *IO, st *task.Store, verb string, args []string, rest string) bool {
	switch verb {
	case "exit", "quit", "q":
		return true

	case "help", "?":
		printMenuHelp(o)

	case "ls", "list":
		printMenuList(o, st)

	case "add":
		menuAdd(o, st, rest)

	case "done", "toggle":
		menuDone(o, st, args)

	case "rm", "del":
		menuRm(o, st, args)

	case "show":
		menuShow(o, st, args)

	default:
		o.Println("Unknown command: " + verb + " (type 'help' for commands)")
	}

	return false
}

func menuAdd(o *IO, st *task.Store, title string) {
	created, err := st.Add(title)
	if err != nil {
		o.Println("Error:", err)

		return
	}

	o.Printf("Added %d: %s\n", created.ID, created.Title)
	printMenuList(o, st)
}

func menuDone(o *IO, st *task.Store, args []string) {
	id, err := parseID(args)
	if err != nil {
		o.Println("Error:", err)

		return
	}

	toggled, toggleErr := st.Toggle(id)
	if toggleErr != nil {
		o.Println("Error:", toggleErr)

		return
	}

	if toggled.IsDone {
		o.Printf("Done %d: %s\n", toggled.ID, toggled.Title)
	} else {
		o.Printf("Reopened %d: %s\n", toggled.ID, toggled.Title)
	}

	printMenuList(o, st)
}

func menuRm(o *IO, st *task.Store, args []string) {
	id, err := parseID(args)
	if err != nil {
		o.Println("Error:", err)

		return
	}

	deleteErr := st.Delete(id)
	if deleteErr != nil {
		o.Println("Error:", deleteErr)

		return
	}

	o.Printf("Deleted %d\n", id)
	printMenuList(o, st)
}

func menuShow(o *IO, st *task.Store, args []string) {
	id, err := parseID(args)
	if err != nil {
		o.Println("Error:", err)

		return
	}

	t, ok := st.Get(id)
	if !ok {
		o.Printf("Error: %v: %d\n", task.ErrTaskNotFound, id)

		return
	}

	printTaskDetail(o, t)
}

func printMenuList(o *IO, st *task.Store) {
	tasks := task.SortedForDisplay(st.Tasks())
	if len(tasks) == 0 {
		o.Println("No tasks yet. Type 'add <title>' to create one.")

		return
	}

	for _, line := range formatTaskLines(tasks) {
		o.Println(line)
	}
}

func printMenuHelp(o *IO) {
	o.Println("Commands:")
	o.Println("  ls                   List tasks (pending first)")
	o.Println("  add <title>          Add a new task")
	o.Println("  done <id>            Toggle task completion")
	o.Println("  rm <id>              Delete a task")
	o.Println("  show <id>            Show one task in detail")
	o.Println("  help                 Show this help")
	o.Println("  exit / quit / q      Exit")
}

// lineReader is the prompt source for the menu loop: liner when attached to
// the real terminal, a plain scanner otherwise (pipes, tests).
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

func newLineReader(in io.Reader, o *IO, env map[string]string) lineReader {
	if f, ok := in.(*os.File); ok && f == os.Stdin && liner.TerminalSupported() {
		return newLinerReader(env)
	}

	if in == nil {
		in = strings.NewReader("")
	}

	return &scannerReader{out: o, scanner: bufio.NewScanner(in)}
}

// scannerReader reads lines from a plain reader and echoes the prompt to
// stdout so transcripts stay readable.
type scannerReader struct {
	out     *IO
	scanner *bufio.Scanner
}

func (r *scannerReader) Prompt(prompt string) (string, error) {
	r.out.Printf("%s", prompt)

	if !r.scanner.Scan() {
		scanErr := r.scanner.Err()
		if scanErr != nil {
			return "", scanErr
		}

		return "", io.EOF
	}

	return r.scanner.Text(), nil
}

func (r *scannerReader) AppendHistory(string) {}

func (r *scannerReader) Close() error { return nil }

// linerReader wraps liner with history persistence and tab completion.
type linerReader struct {
	state       *liner.State
	historyPath string
}

func newLinerReader(env map[string]string) *linerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(menuCompleter)

	r := &linerReader{state: state, historyPath: historyFile(env)}

	// Load history
	if r.historyPath != "" {
		if f, err := os.Open(r.historyPath); err == nil {
			_, _ = state.ReadHistory(f)
			f.Close()
		}
	}

	return r
}

func (r *linerReader) Prompt(prompt string) (string, error) {
	return r.state.Prompt(prompt)
}

func (r *linerReader) AppendHistory(line string) {
	r.state.AppendHistory(line)
}

// Close persists history and restores the terminal.
func (r *linerReader) Close() error {
	if r.historyPath != "" {
		if f, err := os.Create(r.historyPath); err == nil {
			_, _ = r.state.WriteHistory(f)
			f.Close()
		}
	}

	return r.state.Close()
}

// historyFile returns the path to the menu history file.
func historyFile(env map[string]string) string {
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".tdo_history")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".tdo_history")
}

// menuCompleter provides tab completion for menu verbs.
func menuCompleter(line string) []string {
	verbs := []string{
		"ls", "list", "add", "done", "toggle",
		"rm", "del", "show", "help",
		"exit", "quit", "q",
	}

	var completions []string

	lower := strings.ToLower(line)
	for _, verb := range verbs {
		if strings.HasPrefix(verb, lower) {
			completions = append(completions, verb)
		}
	}

	return completions
}
