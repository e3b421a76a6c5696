// Package main provides tdo-seed, a tool to generate populated task files
// for eyeballing list output against bigger collections.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"tdo/internal/task"
)

func main() {
	count := flag.Int("n", 50, "number of tasks to generate")
	out := flag.String("o", task.DefaultFileName, "output file")
	flag.Parse()

	err := seedTasks(*out, *count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %d tasks -> %s\n", *count, *out)
}

func seedTasks(path string, count int) error {
	base := time.Date(2026, time.January, 4, 12, 0, 0, 0, time.UTC)
	tasks := make([]task.Task, 0, count)

	for i := 1; i <= count; i++ {
		t := task.Task{
			ID:        i,
			Title:     fmt.Sprintf("Sample task %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}

		// Vary status for a realistic distribution
		if i%3 == 0 {
			completed := t.CreatedAt.Add(time.Hour)
			t.IsDone = true
			t.CompletedAt = &completed
		}

		tasks = append(tasks, t)
	}

	data, err := task.EncodeTasks(tasks)
	if err != nil {
		return err
	}

	writeErr := os.WriteFile(path, data, 0o600)
	if writeErr != nil {
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}

	return nil
}
