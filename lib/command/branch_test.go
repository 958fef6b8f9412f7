package command

import (
	"bytes"
	"strings"
	"testing"

	"gitlet/lib/command/commandtest"
)

func TestBranch(t *testing.T) {
	t.Run("creates a branch at HEAD without switching", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)
		commitFile(t, tmpDir, "a.txt", "a", "add a", baseTime)
		head := headCommit(t, tmpDir)

		branch(t, tmpDir, "topic")

		r := repo(t, tmpDir)
		oid, err := r.Refs.ReadBranch("topic")
		if err != nil {
			t.Fatal(err)
		}
		if oid != head.Oid() {
			t.Errorf("want %q, but got %q", head.Oid(), oid)
		}
		if current, _ := r.Refs.CurrentBranch(); current != "master" {
			t.Errorf("want %q, but got %q", "master", current)
		}
	})

	t.Run("rejects an existing name", func(t *testing.T) {
		tmpDir, stdout, stderr := setupTestEnvironment(t)

		cmd, err := NewBranch(tmpDir, []string{"master"}, BranchOption{}, stdout, stderr)
		if err != nil {
			t.Fatal(err)
		}
		assertExitCode(t, 1, cmd.Run())
		assertOutput(t, stderr, "A branch with that name already exists.\n")
	})

	t.Run("rejects an invalid name", func(t *testing.T) {
		tmpDir, stdout, stderr := setupTestEnvironment(t)

		cmd, err := NewBranch(tmpDir, []string{"bad..name"}, BranchOption{}, stdout, stderr)
		if err != nil {
			t.Fatal(err)
		}
		assertExitCode(t, 128, cmd.Run())
		if !strings.Contains(stderr.String(), "'bad..name' is not a valid branch name.") {
			t.Errorf("want an invalid name message, but got %q", stderr.String())
		}
	})
}

func TestRmBranch(t *testing.T) {
	runRmBranch := func(t *testing.T, dir, name string) (int, string) {
		stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
		cmd, err := NewRmBranch(dir, []string{name}, RmBranchOption{}, stdout, stderr)
		if err != nil {
			t.Fatal(err)
		}
		return cmd.Run(), stderr.String()
	}

	t.Run("deletes the pointer but keeps its commits", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)
		branch(t, tmpDir, "topic")
		checkout(t, tmpDir, "topic")
		commitFile(t, tmpDir, "a.txt", "a", "on topic", baseTime)
		topic := headCommit(t, tmpDir)
		checkout(t, tmpDir, "master")

		code, _ := runRmBranch(t, tmpDir, "topic")
		assertExitCode(t, 0, code)

		r := repo(t, tmpDir)
		if r.Refs.BranchExists("topic") {
			t.Errorf("want topic to be gone")
		}
		if !r.Database.Exists(topic.Oid()) {
			t.Errorf("want commit %s to survive", topic.Oid())
		}
	})

	t.Run("prunes empty directories of nested names", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)
		branch(t, tmpDir, "feature/x")

		code, _ := runRmBranch(t, tmpDir, "feature/x")
		assertExitCode(t, 0, code)

		if commandtest.Exists(tmpDir, ".gitlet/refs/heads/feature") {
			t.Errorf("want the feature directory to be pruned")
		}
	})

	t.Run("refuses the current branch", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)

		code, stderr := runRmBranch(t, tmpDir, "master")
		assertExitCode(t, 1, code)
		if stderr != "Cannot remove the current branch.\n" {
			t.Errorf("want %q, but got %q", "Cannot remove the current branch.\n", stderr)
		}
	})

	t.Run("refuses an unknown branch", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)

		code, stderr := runRmBranch(t, tmpDir, "nope")
		assertExitCode(t, 1, code)
		if stderr != "A branch with that name does not exist.\n" {
			t.Errorf("want %q, but got %q", "A branch with that name does not exist.\n", stderr)
		}
	})
}
