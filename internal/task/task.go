package task

import (
	"slices"
	"strings"
	"time"
)

// Task represents a single to-do item.
//
// CompletedAt is set exactly when IsDone is true; every operation that flips
// IsDone maintains that pairing.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	IsDone      bool       `json:"isDone"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// ValidateTitle trims surrounding whitespace and rejects titles that are
// empty afterwards. Returns the trimmed title.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrTitleEmpty
	}

	return trimmed, nil
}

// NextID returns the ID to assign to a new task: 1 for an empty collection,
// otherwise one more than the highest existing ID. Deleting the task with the
// highest ID frees that ID for reuse; lower gaps are never refilled.
func NextID(tasks []Task) int {
	maxID := 0

	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	return maxID + 1
}

// DuplicateIDs returns the IDs that occur more than once, in ascending order.
// The store never assigns a duplicate; they can only arrive through hand
// edits of the backing file.
func DuplicateIDs(tasks []Task) []int {
	counts := make(map[int]int, len(tasks))
	for _, t := range tasks {
		counts[t.ID]++
	}

	var dups []int

	for id, n := range counts {
		if n > 1 {
			dups = append(dups, id)
		}
	}

	slices.Sort(dups)

	return dups
}

// SortedForDisplay returns a copy of tasks in presentation order: tasks still
// to do before completed ones, ascending ID within each group. The input
// slice is not modified.
func SortedForDisplay(tasks []Task) []Task {
	out := slices.Clone(tasks)

	slices.SortStableFunc(out, func(a, b Task) int {
		if a.IsDone != b.IsDone {
			if a.IsDone {
				return 1
			}

			return -1
		}

		return a.ID - b.ID
	})

	return out
}
