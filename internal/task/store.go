package task

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"time"
)

const filePerms = 0o600

// Store holds the task collection for a single backing file and keeps the
// file synchronized with memory: every successful mutation rewrites the whole
// file before returning. A Store is not safe for concurrent use, and two
// stores (or processes) over the same path will overwrite each other.
type Store struct {
	path  string
	tasks []Task
	now   func() time.Time
}

// NewStore creates a store backed by the file at path. No I/O happens until
// Load or the first mutation.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		now:  time.Now,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tasks currently in memory.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of the collection in insertion order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Get returns the task with the given ID. The second result is false when no
// task has that ID. With duplicate IDs (possible after hand edits) the first
// occurrence wins.
func (s *Store) Get(id int) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}

	return Task{}, false
}

// Load reads the backing file and replaces the in-memory collection with its
// contents. A file that does not exist yet is not an error and leaves the
// collection as it was; an existing but blank file resets it to empty.
// Content that cannot be parsed fails with ErrFileMalformed and leaves the
// collection unchanged.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("reading task file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.tasks = []Task{}

		return nil
	}

	tasks, decodeErr := DecodeTasks(data)
	if decodeErr != nil {
		return fmt.Errorf("%s: %w", s.path, decodeErr)
	}

	s.tasks = tasks

	return nil
}

// Save writes the entire collection to the backing file, replacing it
// atomically so a reader never observes a partial file. Missing parent
// directories are not created.
func (s *Store) Save() error {
	data, err := EncodeTasks(s.tasks)
	if err != nil {
		return err
	}

	writeErr := atomicWriteFile(s.path, data)
	if writeErr != nil {
		return fmt.Errorf("writing task file: %w", writeErr)
	}

	return nil
}

// Add appends a new open task with the next ID and the current time, persists
// the collection, and returns the created task. Blank titles (after trimming)
// fail with ErrTitleEmpty. If persisting fails the task stays in memory and
// the write error is returned.
func (s *Store) Add(title string) (Task, error) {
	trimmed, err := ValidateTitle(title)
	if err != nil {
		return Task{}, err
	}

	t := Task{
		ID:        NextID(s.tasks),
		Title:     trimmed,
		CreatedAt: s.now(),
	}

	s.tasks = append(s.tasks, t)

	saveErr := s.Save()
	if saveErr != nil {
		return Task{}, saveErr
	}

	return t, nil
}

// Toggle flips the completion state of the task with the given ID and
// persists the collection. Completing stamps CompletedAt; reopening clears
// it. Returns the updated task. An unknown ID fails with ErrTaskNotFound
// without touching the file.
func (s *Store) Toggle(id int) (Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}

		t := &s.tasks[i]
		t.IsDone = !t.IsDone

		if t.IsDone {
			completed := s.now()
			t.CompletedAt = &completed
		} else {
			t.CompletedAt = nil
		}

		saveErr := s.Save()
		if saveErr != nil {
			return Task{}, saveErr
		}

		return *t, nil
	}

	return Task{}, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
}

// Delete removes every task with the given ID (duplicates can exist after
// hand edits) and persists the collection. An unknown ID fails with
// ErrTaskNotFound without touching the file.
func (s *Store) Delete(id int) error {
	before := len(s.tasks)

	s.tasks = slices.DeleteFunc(s.tasks, func(t Task) bool {
		return t.ID == id
	})

	if len(s.tasks) == before {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}

	return s.Save()
}
