package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

// DecodeTasks parses a serialized task sequence. Hand-edited files may carry
// JSONC extras (// and /* */ comments, trailing commas); those are
// standardized away before unmarshaling. Anything else that fails to parse
// wraps ErrFileMalformed.
func DecodeTasks(data []byte) ([]Task, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSONC: %w", ErrFileMalformed, err)
	}

	var tasks []Task

	unmarshalErr := json.Unmarshal(standardized, &tasks)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", ErrFileMalformed, unmarshalErr)
	}

	return tasks, nil
}

// EncodeTasks serializes tasks as an indented JSON array with a trailing
// newline, so the file stays readable and diffable in an editor. A nil slice
// still encodes as an empty array, never null.
func EncodeTasks(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding tasks: %w", err)
	}

	return append(data, '\n'), nil
}

// atomicWriteFile replaces path via temp file + rename.
func atomicWriteFile(path string, data []byte) error {
	err := atomic.WriteFile(path, bytes.NewReader(data))
	if err != nil {
		return err
	}

	// Set file permissions (atomic.WriteFile doesn't set them for new files)
	chmodErr := os.Chmod(path, filePerms)
	if chmodErr != nil {
		return fmt.Errorf("setting file permissions: %w", chmodErr)
	}

	return nil
}
