package cli_test

import (
	"testing"

	"tdo/internal/cli"
)

func TestRmCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{
			name:       "missing ID returns error",
			args:       []string{"rm"},
			wantStderr: "task ID is required",
		},
		{
			name:       "non-numeric ID returns error",
			args:       []string{"rm", "abc"},
			wantStderr: "task ID must be a number: abc",
		},
		{
			name:       "unknown ID returns error",
			args:       []string{"rm", "7"},
			wantStderr: "task not found: 7",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)

			stderr := c.MustFail(testCase.args...)
			cli.AssertContains(t, stderr, testCase.wantStderr)
		})
	}
}

func TestRmDeletesTaskAndPersists(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "Buy milk")
	c.MustRun("add", "Walk the dog")

	if out := c.MustRun("rm", "1"); out != "Deleted 1" {
		t.Errorf("rm output = %q, want %q", out, "Deleted 1")
	}

	tasks := c.ReadTasks()
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Errorf("unexpected tasks after delete: %+v", tasks)
	}

	// Deleting the same ID again must fail
	stderr := c.MustFail("rm", "1")
	cli.AssertContains(t, stderr, "task not found: 1")
}

func TestRmRemovesEveryDuplicate(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteTaskFile(`[
  {"id": 1, "title": "first copy", "isDone": false, "createdAt": "2026-01-04T12:00:00Z"},
  {"id": 1, "title": "second copy", "isDone": false, "createdAt": "2026-01-04T12:01:00Z"},
  {"id": 2, "title": "unrelated", "isDone": false, "createdAt": "2026-01-04T12:02:00Z"}
]`)

	stdout, stderr, code := c.Run("rm", "1")

	// Exit 1 because the duplicate warning demands attention
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}

	cli.AssertContains(t, stdout, "Deleted 1")
	cli.AssertContains(t, stderr, "duplicate task id 1")

	tasks := c.ReadTasks()
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Errorf("expected only the unrelated task to survive, got %+v", tasks)
	}
}

func TestRmHelp(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	out := c.MustRun("rm", "--help")
	cli.AssertContains(t, out, "Usage: tdo rm")
}
