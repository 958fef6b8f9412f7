package command

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"gitlet/lib/database"
)

func runLog(t *testing.T, dir string) string {
	t.Helper()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd, err := NewLog(dir, nil, LogOption{}, stdout, stderr)
	if err != nil {
		t.Fatal(err)
	}
	assertExitCode(t, 0, cmd.Run())
	return stdout.String()
}

func logEntry(c *database.Commit) string {
	var merge string
	if c.IsMerge() {
		merge = fmt.Sprintf("Merge: %s %s\n", c.Parents[0][:7], c.Parents[1][:7])
	}
	return fmt.Sprintf("===\ncommit %s\n%sDate: %s\n%s\n\n",
		c.Oid(), merge, c.Date().Format(DATE_FORMAT), c.Message())
}

func TestLog(t *testing.T) {
	t.Run("prints the root commit", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)
		root := headCommit(t, tmpDir)

		got := runLog(t, tmpDir)
		want := fmt.Sprintf("===\ncommit %s\nDate: Thu Jan 1 00:00:00 1970 +0000\ninitial commit\n\n", root.Oid())
		if got != want {
			t.Errorf("want %q, but got %q", want, got)
		}
	})

	t.Run("prints history newest first", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)
		root := headCommit(t, tmpDir)
		commitFile(t, tmpDir, "a.txt", "a", "first", baseTime)
		first := headCommit(t, tmpDir)
		commitFile(t, tmpDir, "b.txt", "b", "second", baseTime.Add(time.Hour))
		second := headCommit(t, tmpDir)

		want := logEntry(second) + logEntry(first) + logEntry(root)
		if got := runLog(t, tmpDir); got != want {
			t.Errorf("want %q, but got %q", want, got)
		}
		if !strings.Contains(want, "Date: Fri Mar 1 13:00:00 2024 -0800") {
			t.Errorf("want the commit's own zone in %q", want)
		}
	})

	t.Run("follows only the active branch", func(t *testing.T) {
		tmpDir, _, _ := setupTestEnvironment(t)
		branch(t, tmpDir, "other")
		checkout(t, tmpDir, "other")
		commitFile(t, tmpDir, "a.txt", "a", "on other", baseTime)
		checkout(t, tmpDir, "master")

		if got := runLog(t, tmpDir); strings.Contains(got, "on other") {
			t.Errorf("want master's history only, but got %q", got)
		}
	})
}

func TestGlobalLog(t *testing.T) {
	t.Run("prints commits from every branch", func(t *testing.T) {
		tmpDir, stdout, stderr := setupTestEnvironment(t)
		branch(t, tmpDir, "other")
		checkout(t, tmpDir, "other")
		commitFile(t, tmpDir, "a.txt", "a", "on other", baseTime)
		checkout(t, tmpDir, "master")
		commitFile(t, tmpDir, "b.txt", "b", "on master", baseTime)

		cmd, err := NewGlobalLog(tmpDir, nil, GlobalLogOption{}, stdout, stderr)
		if err != nil {
			t.Fatal(err)
		}
		assertExitCode(t, 0, cmd.Run())

		for _, message := range []string{"initial commit", "on other", "on master"} {
			if !strings.Contains(stdout.String(), "\n"+message+"\n") {
				t.Errorf("want %q in %q", message, stdout.String())
			}
		}
		if n := strings.Count(stdout.String(), "===\n"); n != 3 {
			t.Errorf("want 3 entries, but got %d", n)
		}
	})
}

func TestFind(t *testing.T) {
	t.Run("prints the ids of matching commits", func(t *testing.T) {
		tmpDir, stdout, stderr := setupTestEnvironment(t)
		commitFile(t, tmpDir, "a.txt", "a", "same", baseTime)
		first := headCommit(t, tmpDir)
		commitFile(t, tmpDir, "a.txt", "b", "same", baseTime.Add(time.Second))
		second := headCommit(t, tmpDir)

		cmd, err := NewFind(tmpDir, []string{"same"}, FindOption{}, stdout, stderr)
		if err != nil {
			t.Fatal(err)
		}
		assertExitCode(t, 0, cmd.Run())

		got := strings.Fields(stdout.String())
		if len(got) != 2 {
			t.Fatalf("want 2 ids, but got %v", got)
		}
		for _, oid := range []string{first.Oid(), second.Oid()} {
			if !strings.Contains(stdout.String(), oid) {
				t.Errorf("want %s in %q", oid, stdout.String())
			}
		}
	})

	t.Run("reports a message nobody used", func(t *testing.T) {
		tmpDir, stdout, stderr := setupTestEnvironment(t)

		cmd, err := NewFind(tmpDir, []string{"nothing"}, FindOption{}, stdout, stderr)
		if err != nil {
			t.Fatal(err)
		}
		assertExitCode(t, 1, cmd.Run())
		assertOutput(t, stderr, "Found no commit with that message.\n")
	})
}
