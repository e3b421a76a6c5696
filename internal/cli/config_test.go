package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"tdo/internal/cli"
	"tdo/internal/task"
)

func writeConfigFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func Test_Print_Config_Defaults_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	out := c.MustRun("print-config")

	cli.AssertContains(t, out, `"file": "To-Do-List.json"`)
	cli.AssertContains(t, out, "effective_cwd="+c.Dir)
	cli.AssertContains(t, out, "task_file="+c.TaskFile())
	cli.AssertContains(t, out, "(using defaults only)")
}

func Test_Print_Config_Shows_Project_Config_When_Present(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	projectCfg := filepath.Join(c.Dir, task.ConfigFileName)
	writeConfigFile(t, projectCfg, `{"file": "work.json"}`)

	out := c.MustRun("print-config")

	cli.AssertContains(t, out, `"file": "work.json"`)
	cli.AssertContains(t, out, "task_file="+filepath.Join(c.Dir, "work.json"))
	cli.AssertContains(t, out, "#   project: "+projectCfg)
	cli.AssertNotContains(t, out, "(using defaults only)")
}

func Test_Print_Config_Shows_Global_Config_When_XDG_Set(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	xdg := t.TempDir()
	globalCfg := filepath.Join(xdg, "tdo", "config.json")
	writeConfigFile(t, globalCfg, `{"file": "global.json"}`)
	c.Env["XDG_CONFIG_HOME"] = xdg

	out := c.MustRun("print-config")

	cli.AssertContains(t, out, `"file": "global.json"`)
	cli.AssertContains(t, out, "#   global: "+globalCfg)
}

func Test_Print_Config_Project_Beats_Global_When_Both_Present(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	xdg := t.TempDir()
	writeConfigFile(t, filepath.Join(xdg, "tdo", "config.json"), `{"file": "global.json"}`)
	writeConfigFile(t, filepath.Join(c.Dir, task.ConfigFileName), `{"file": "project.json"}`)
	c.Env["XDG_CONFIG_HOME"] = xdg

	out := c.MustRun("print-config")

	cli.AssertContains(t, out, `"file": "project.json"`)
	cli.AssertContains(t, out, "#   global:")
	cli.AssertContains(t, out, "#   project:")
}

func Test_Print_Config_Explicit_Config_When_Flag_Passed(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	writeConfigFile(t, filepath.Join(c.Dir, task.ConfigFileName), `{"file": "project.json"}`)
	writeConfigFile(t, filepath.Join(c.Dir, "custom.json"), `{"file": "custom-target.json"}`)

	out := c.MustRun("-c", "custom.json", "print-config")

	cli.AssertContains(t, out, `"file": "custom-target.json"`)
	cli.AssertContains(t, out, "#   project: "+filepath.Join(c.Dir, "custom.json"))
}

func Test_Print_Config_File_Flag_Wins_When_Passed(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	writeConfigFile(t, filepath.Join(c.Dir, task.ConfigFileName), `{"file": "project.json"}`)

	out := c.MustRun("--file", "cli.json", "print-config")

	cli.AssertContains(t, out, `"file": "cli.json"`)
	cli.AssertContains(t, out, "task_file="+filepath.Join(c.Dir, "cli.json"))
}

func Test_Config_Allows_Comments_When_JSONC(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	writeConfigFile(t, filepath.Join(c.Dir, task.ConfigFileName), `{
  // work list lives next to the code
  "file": "work.json",
}`)

	out := c.MustRun("print-config")

	cli.AssertContains(t, out, `"file": "work.json"`)
}

func Test_Config_Rejects_Explicit_Empty_File_When_Set(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	writeConfigFile(t, filepath.Join(c.Dir, task.ConfigFileName), `{"file": ""}`)

	stderr := c.MustFail("print-config")

	cli.AssertContains(t, stderr, "invalid config file")
	cli.AssertContains(t, stderr, "file cannot be empty")
}

func Test_Config_Missing_Explicit_Config_Fails_When_Passed(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("-c", "nope.json", "ls")

	cli.AssertContains(t, stderr, "config file not found: nope.json")
}

func Test_Config_Invalid_JSON_Fails_When_Loaded(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	writeConfigFile(t, filepath.Join(c.Dir, task.ConfigFileName), `{"file": `)

	stderr := c.MustFail("ls")

	cli.AssertContains(t, stderr, "invalid config file")
}
