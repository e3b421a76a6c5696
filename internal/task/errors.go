package task

import "errors"

// Error variables for task operations.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrTaskFileEmpty      = errors.New("file cannot be empty")
	ErrFlagRequiresArg    = errors.New("flag requires an argument")
	ErrUnknownFlag        = errors.New("unknown flag")
	ErrFileMalformed      = errors.New("malformed task file")
	ErrTaskNotFound       = errors.New("task not found")
	ErrIDRequired         = errors.New("task ID is required")
	ErrTitleEmpty         = errors.New("title cannot be empty")
)
