package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tdo/internal/task"
)

const (
	consumedOne  = 1
	consumedTwo  = 2
	consumedNone = 0
	helpFlag     = "--help"
)

var errIDNotNumeric = errors.New("task ID must be a number")

// Run is the main entry point. Returns exit code.
//
// Running without a command starts the interactive menu; in is only read
// there.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	// Parse global flags
	flags, err := parseGlobalFlags(rest)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	// Handle help flags before config loading so help works anywhere
	if len(flags.remaining) > 0 {
		cmd := flags.remaining[0]
		if cmd == "-h" || cmd == helpFlag {
			printUsage(out)

			return 0
		}
	}

	// Load and validate config
	cfg, err := task.LoadConfig(task.LoadConfigInput{
		WorkDirOverride: flags.workDir,
		ConfigPath:      flags.configPath,
		FileOverride:    flags.file,
		Env:             env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	// Create IO for command
	ioCtx := NewIO(out, errOut)

	// No command: interactive menu
	if len(flags.remaining) == 0 {
		menuErr := cmdMenu(in, ioCtx, cfg, env)
		if menuErr != nil {
			fprintln(errOut, "error:", menuErr)

			return 1
		}

		return ioCtx.Finish()
	}

	cmd := flags.remaining[0]
	cmdArgs := flags.remaining[1:]

	// Dispatch to command
	var cmdErr error

	switch cmd {
	case "add":
		cmdErr = cmdAdd(ioCtx, cfg, cmdArgs)
	case "ls":
		cmdErr = cmdLs(ioCtx, cfg, cmdArgs)
	case "done":
		cmdErr = cmdDone(ioCtx, cfg, cmdArgs)
	case "rm":
		cmdErr = cmdRm(ioCtx, cfg, cmdArgs)
	case "show":
		cmdErr = cmdShow(ioCtx, cfg, cmdArgs)
	case "menu":
		cmdErr = cmdMenu(in, ioCtx, cfg, env)
	case "print-config":
		cmdErr = cmdPrintConfig(ioCtx, cfg)
	default:
		fprintln(errOut, "error: unknown command:", cmd)
		printUsage(errOut)

		return 1
	}

	// Fatal error
	if cmdErr != nil {
		fprintln(errOut, "error:", cmdErr)

		return 1
	}

	// Finish handles warnings and exit code
	return ioCtx.Finish()
}

// openStore creates the store for cfg and loads the backing file. Duplicate
// IDs (possible only after hand edits) are tolerated and reported as
// warnings.
func openStore(o *IO, cfg task.Config) (*task.Store, error) {
	st := task.NewStore(cfg.FileAbs)

	err := st.Load()
	if err != nil {
		return nil, err
	}

	for _, id := range task.DuplicateIDs(st.Tasks()) {
		o.Warn(
			fmt.Sprintf("duplicate task id %d in %s", id, st.Path()),
			"ids were kept as-is; 'rm' removes every task with that id",
		)
	}

	return st, nil
}

// parseID extracts the numeric task ID from the command arguments.
func parseID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, task.ErrIDRequired
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errIDNotNumeric, args[0])
	}

	return id, nil
}

type globalFlags struct {
	workDir    string
	configPath string
	file       string
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// -C/--cwd flag (work directory)
	if (arg == "-C" || arg == "--cwd") && idx+1 < len(args) {
		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "-C"); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -c/--config flag
	if arg == "-c" || arg == "--config" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", task.ErrFlagRequiresArg, arg)
		}

		flags.configPath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--config="); ok {
		flags.configPath = after

		return consumedOne, nil
	}

	// --file flag
	if arg == "--file" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", task.ErrFlagRequiresArg, arg)
		}

		flags.file = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--file="); ok {
		flags.file = after

		return consumedOne, nil
	}

	// -h/--help flags
	if arg == "-h" || arg == helpFlag {
		flags.remaining = []string{helpFlag}

		return len(args) - idx, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("%w: %s", task.ErrUnknownFlag, arg)
	}

	// Not a flag
	return consumedNone, nil
}

func cmdPrintConfig(o *IO, cfg task.Config) error {
	formatted, err := task.FormatConfig(cfg)
	if err != nil {
		return err
	}

	o.Println(formatted)
	o.Println("")
	o.Println("effective_cwd=" + cfg.EffectiveCwd)
	o.Println("task_file=" + cfg.FileAbs)

	// Print sources
	o.Println("")
	o.Println("# Sources:")

	if cfg.Sources.Global != "" {
		o.Println("#   global:", cfg.Sources.Global)
	}

	if cfg.Sources.Project != "" {
		o.Println("#   project:", cfg.Sources.Project)
	}

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		o.Println("#   (using defaults only)")
	}

	return nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == helpFlag {
			return true
		}
	}

	return false
}

func printUsage(writer io.Writer) {
	fprintln(writer, `tdo - to-do list in a single JSON file

Usage: tdo [options] [command] [args]

Running tdo without a command starts the interactive menu.

Options:
  -C, --cwd <dir>    Run as if started in <dir>
  -c, --config       Use specified config file
      --file <path>  Use specified task file

Commands:`)
	fprintln(writer, addHelp)
	fprintln(writer, lsHelp)
	fprintln(writer, doneHelp)
	fprintln(writer, rmHelp)
	fprintln(writer, showHelp)
	fprintln(writer, menuHelp)
	fprintln(writer, `  print-config           Show resolved configuration`)
}
