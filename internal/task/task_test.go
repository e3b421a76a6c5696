package task_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tdo/internal/task"
)

func mkTask(id int, title string, done bool) task.Task {
	t := task.Task{
		ID:        id,
		Title:     title,
		IsDone:    done,
		CreatedAt: time.Date(2026, time.January, 4, 12, 0, 0, 0, time.UTC),
	}

	if done {
		completed := t.CreatedAt.Add(time.Hour)
		t.CompletedAt = &completed
	}

	return t
}

func Test_ValidateTitle_Trims_Surrounding_Whitespace(t *testing.T) {
	t.Parallel()

	got, err := task.ValidateTitle("  Buy milk \t")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got)
}

func Test_ValidateTitle_Keeps_Inner_Whitespace(t *testing.T) {
	t.Parallel()

	got, err := task.ValidateTitle("Buy  oat   milk")
	require.NoError(t, err)
	assert.Equal(t, "Buy  oat   milk", got)
}

func Test_ValidateTitle_Rejects_Blank_Titles(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		title string
	}{
		{name: "Empty", title: ""},
		{name: "Spaces", title: "   "},
		{name: "MixedWhitespace", title: " \t\n "},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := task.ValidateTitle(testCase.title)
			require.ErrorIs(t, err, task.ErrTitleEmpty, "blank titles must be rejected")
		})
	}
}

func Test_NextID_Is_One_When_Collection_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, task.NextID(nil))
	assert.Equal(t, 1, task.NextID([]task.Task{}))
}

func Test_NextID_Is_Max_Plus_One(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		ids  []int
		want int
	}{
		{name: "Sequential", ids: []int{1, 2, 3}, want: 4},
		{name: "SingleTask", ids: []int{1}, want: 2},
		{name: "GapsAreNotRefilled", ids: []int{1, 5}, want: 6},
		{name: "Unordered", ids: []int{7, 2, 4}, want: 8},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tasks := make([]task.Task, 0, len(testCase.ids))
			for _, id := range testCase.ids {
				tasks = append(tasks, mkTask(id, "t", false))
			}

			assert.Equal(t, testCase.want, task.NextID(tasks))
		})
	}
}

func Test_NextID_Frees_ID_When_Highest_Removed(t *testing.T) {
	t.Parallel()

	// Start from IDs 1..3, then drop 3 and 2: the next ID is 2 again.
	remaining := []task.Task{mkTask(1, "t", false)}

	assert.Equal(t, 2, task.NextID(remaining))
}

func Test_SortedForDisplay_Puts_Pending_Before_Done(t *testing.T) {
	t.Parallel()

	tasks := []task.Task{
		mkTask(1, "a", true),
		mkTask(2, "b", false),
		mkTask(3, "c", true),
		mkTask(4, "d", false),
	}

	sorted := task.SortedForDisplay(tasks)

	gotIDs := make([]int, 0, len(sorted))
	for _, item := range sorted {
		gotIDs = append(gotIDs, item.ID)
	}

	assert.Empty(t, cmp.Diff([]int{2, 4, 1, 3}, gotIDs))
}

func Test_SortedForDisplay_Sorts_By_ID_Within_Group(t *testing.T) {
	t.Parallel()

	tasks := []task.Task{
		mkTask(9, "a", false),
		mkTask(4, "b", true),
		mkTask(2, "c", false),
		mkTask(1, "d", true),
	}

	sorted := task.SortedForDisplay(tasks)

	gotIDs := make([]int, 0, len(sorted))
	for _, item := range sorted {
		gotIDs = append(gotIDs, item.ID)
	}

	assert.Empty(t, cmp.Diff([]int{2, 9, 1, 4}, gotIDs))
}

func Test_SortedForDisplay_Does_Not_Modify_Input(t *testing.T) {
	t.Parallel()

	tasks := []task.Task{
		mkTask(2, "a", true),
		mkTask(1, "b", false),
	}
	original := []task.Task{
		mkTask(2, "a", true),
		mkTask(1, "b", false),
	}

	_ = task.SortedForDisplay(tasks)

	assert.Empty(t, cmp.Diff(original, tasks), "input slice must stay in insertion order")
}

func Test_DuplicateIDs_Returns_Duplicates_In_Ascending_Order(t *testing.T) {
	t.Parallel()

	tasks := []task.Task{
		mkTask(5, "a", false),
		mkTask(1, "b", false),
		mkTask(5, "c", true),
		mkTask(1, "d", false),
		mkTask(3, "e", false),
	}

	assert.Empty(t, cmp.Diff([]int{1, 5}, task.DuplicateIDs(tasks)))
}

func Test_DuplicateIDs_Is_Empty_When_IDs_Unique(t *testing.T) {
	t.Parallel()

	tasks := []task.Task{
		mkTask(1, "a", false),
		mkTask(2, "b", true),
	}

	assert.Empty(t, task.DuplicateIDs(tasks))
}
