package command

import (
	"bytes"
	"os"
	"testing"

	"gitlet/lib/command/commandtest"
)

func TestAdd(t *testing.T) {
	t.Run("stages a new file", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)
		writeFile(t, tmpDir, "hello.txt", "hello")

		add(t, tmpDir, "hello.txt")

		r := repo(t, tmpDir)
		if !r.Stage.Additions.Has("hello.txt") {
			t.Errorf("want hello.txt to be staged")
		}
	})

	t.Run("stages files in subdirectories", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)
		writeFile(t, tmpDir, "a/b/c.txt", "deep")

		add(t, tmpDir, "a/b/c.txt")

		if got := repo(t, tmpDir).Stage.Additions.Paths(); len(got) != 1 || got[0] != "a/b/c.txt" {
			t.Errorf("want [a/b/c.txt], but got %v", got)
		}
	})

	t.Run("fails for a missing file", func(t *testing.T) {
		tmpDir, stdout, stderr := setupTestEnvironment(t)

		cmd, err := NewAdd(tmpDir, []string{"no-such-file"}, AddOption{}, stdout, stderr)
		if err != nil {
			t.Fatal(err)
		}
		assertExitCode(t, 1, cmd.Run())
		assertOutput(t, stderr, "File does not exist.\n")
	})

	t.Run("unstages a file restored to its committed content", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)
		commitFile(t, tmpDir, "f.txt", "one", "first", baseTime)

		writeFile(t, tmpDir, "f.txt", "two")
		add(t, tmpDir, "f.txt")
		writeFile(t, tmpDir, "f.txt", "one")
		add(t, tmpDir, "f.txt")

		if n := repo(t, tmpDir).Stage.Additions.Len(); n != 0 {
			t.Errorf("want nothing staged, but got %d entries", n)
		}
	})

	t.Run("reports unreadable files as fatal", func(t *testing.T) {
		if os.Getuid() == 0 {
			t.Skip("file permissions are not enforced for root")
		}
		tmpDir, stdout, stderr := setupTestEnvironment(t)
		writeFile(t, tmpDir, "secret.txt", "x")
		commandtest.MakeUnreadable(t, tmpDir, "secret.txt")

		cmd, err := NewAdd(tmpDir, []string{"secret.txt"}, AddOption{}, stdout, stderr)
		if err != nil {
			t.Fatal(err)
		}
		assertExitCode(t, 128, cmd.Run())
		if !bytes.HasPrefix(stderr.Bytes(), []byte("fatal: ")) {
			t.Errorf("want a fatal message, but got %q", stderr.String())
		}
	})
}
