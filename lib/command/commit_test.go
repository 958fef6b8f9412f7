package command

import (
	"testing"
	"time"
)

func TestCommit(t *testing.T) {
	t.Run("records staged files on top of HEAD", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)
		root := headCommit(t, tmpDir)

		commitFile(t, tmpDir, "a.txt", "alpha", "add a", baseTime)

		head := headCommit(t, tmpDir)
		if head.Message() != "add a" {
			t.Errorf("want %q, but got %q", "add a", head.Message())
		}
		if head.Parent() != root.Oid() {
			t.Errorf("want parent %q, but got %q", root.Oid(), head.Parent())
		}
		if _, ok := head.Tree()["a.txt"]; !ok {
			t.Errorf("want a.txt in the tree, but got %v", head.Tree())
		}
		if !head.Date().Equal(baseTime) {
			t.Errorf("want %v, but got %v", baseTime, head.Date())
		}
	})

	t.Run("clears the stage", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)
		commitFile(t, tmpDir, "a.txt", "alpha", "add a", baseTime)

		if !repo(t, tmpDir).Stage.IsEmpty() {
			t.Errorf("want an empty stage after commit")
		}
	})

	t.Run("carries unchanged files forward", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)
		commitFile(t, tmpDir, "a.txt", "alpha", "add a", baseTime)
		commitFile(t, tmpDir, "b.txt", "beta", "add b", baseTime.Add(time.Minute))

		tree := headCommit(t, tmpDir).Tree()
		if len(tree) != 2 {
			t.Errorf("want 2 tracked files, but got %v", tree)
		}
	})

	t.Run("rejects an empty message", func(t *testing.T) {
		tmpDir, stdout, stderr := setupTestEnvironment(t)
		writeFile(t, tmpDir, "a.txt", "alpha")
		add(t, tmpDir, "a.txt")

		cmd, err := NewCommit(tmpDir, []string{""}, CommitOption{}, stdout, stderr)
		if err != nil {
			t.Fatal(err)
		}
		assertExitCode(t, 1, cmd.Run(baseTime))
		assertOutput(t, stderr, "Please enter a commit message.\n")
	})

	t.Run("rejects a commit with nothing staged", func(t *testing.T) {
		tmpDir, stdout, stderr := setupTestEnvironment(t)

		cmd, err := NewCommit(tmpDir, []string{"empty"}, CommitOption{}, stdout, stderr)
		if err != nil {
			t.Fatal(err)
		}
		assertExitCode(t, 1, cmd.Run(baseTime))
		assertOutput(t, stderr, "No changes added to the commit.\n")
	})
}
