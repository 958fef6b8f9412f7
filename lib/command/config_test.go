package command

import (
	"bytes"
	"testing"

	"gitlet/lib/command/commandtest"
)

func runConfig(t *testing.T, dir string, options ConfigOption, args ...string) (int, string, string) {
	t.Helper()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd, err := NewConfig(dir, args, options, stdout, stderr)
	if err != nil {
		t.Fatal(err)
	}
	return cmd.Run(), stdout.String(), stderr.String()
}

func TestConfig(t *testing.T) {
	t.Run("prints the default for an unset key", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)

		code, stdout, _ := runConfig(t, tmpDir, ConfigOption{}, "color")
		assertExitCode(t, 0, code)
		if stdout != "auto\n" {
			t.Errorf("want %q, but got %q", "auto\n", stdout)
		}
	})

	t.Run("writes a value to the repository config", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)

		code, _, _ := runConfig(t, tmpDir, ConfigOption{}, "log.level", "debug")
		assertExitCode(t, 0, code)

		if !commandtest.Exists(tmpDir, ".gitlet/config.yaml") {
			t.Fatalf("want .gitlet/config.yaml to exist")
		}
		_, stdout, _ := runConfig(t, tmpDir, ConfigOption{}, "log.level")
		if stdout != "debug\n" {
			t.Errorf("want %q, but got %q", "debug\n", stdout)
		}
	})

	t.Run("lists every key", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)

		code, stdout, _ := runConfig(t, tmpDir, ConfigOption{List: true})
		assertExitCode(t, 0, code)
		want := "color=auto\nlog.level=warn\npager=true\n"
		if stdout != want {
			t.Errorf("want %q, but got %q", want, stdout)
		}
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)

		code, _, stderr := runConfig(t, tmpDir, ConfigOption{}, "core.editor", "vi")
		assertExitCode(t, 1, code)
		if stderr != "error: unknown config key 'core.editor'\n" {
			t.Errorf("want %q, but got %q", "error: unknown config key 'core.editor'\n", stderr)
		}
	})

	t.Run("needs a repository", func(t *testing.T) {
		tmpDir, stdout, stderr := commandtest.SetupTestEnvironment(t)

		if _, err := NewConfig(tmpDir, []string{"color"}, ConfigOption{}, stdout, stderr); err == nil {
			t.Errorf("want an error outside a repository")
		}
	})
}
