package command

import (
	"fmt"
	"io"

	"gitlet/lib/database"
	"gitlet/lib/pager"
	"gitlet/lib/repository"

	"github.com/fatih/color"
)

const DATE_FORMAT = "Mon Jan 2 15:04:05 2006 -0700"

type LogOption struct {
	GlobalOption
}

// Log prints the first-parent history of the active branch, newest first.
type Log struct {
	repo    *repository.Repository
	options LogOption
	stdout  io.Writer
	stderr  io.Writer
}

func NewLog(dir string, args []string, options LogOption, stdout, stderr io.Writer) (*Log, error) {
	repo, err := openRepository(dir, options.logger())
	if err != nil {
		return nil, err
	}

	return &Log{
		repo:    repo,
		options: options,
		stdout:  stdout,
		stderr:  stderr,
	}, nil
}

func (l *Log) Run() int {
	head, err := l.repo.HeadCommit()
	if err != nil {
		return ReportError(l.stderr, err)
	}
	commits, err := repository.NewRevList(l.repo).History(head)
	if err != nil {
		return ReportError(l.stderr, err)
	}

	out, wait := pager.SetupPager(l.options.Pager, l.stdout, l.stderr)
	defer wait()

	for _, commit := range commits {
		showCommit(out, commit)
	}
	return 0
}

type GlobalLogOption struct {
	GlobalOption
}

// GlobalLog prints every commit in the object store.
type GlobalLog struct {
	repo    *repository.Repository
	options GlobalLogOption
	stdout  io.Writer
	stderr  io.Writer
}

func NewGlobalLog(dir string, args []string, options GlobalLogOption, stdout, stderr io.Writer) (*GlobalLog, error) {
	repo, err := openRepository(dir, options.logger())
	if err != nil {
		return nil, err
	}

	return &GlobalLog{
		repo:    repo,
		options: options,
		stdout:  stdout,
		stderr:  stderr,
	}, nil
}

func (g *GlobalLog) Run() int {
	commits, err := repository.NewRevList(g.repo).All()
	if err != nil {
		return ReportError(g.stderr, err)
	}

	out, wait := pager.SetupPager(g.options.Pager, g.stdout, g.stderr)
	defer wait()

	for _, commit := range commits {
		showCommit(out, commit)
	}
	return 0
}

func showCommit(w io.Writer, commit *database.Commit) {
	fmt.Fprintln(w, "===")
	color.New(color.FgYellow).Fprintf(w, "commit %s\n", commit.Oid())
	if commit.IsMerge() {
		fmt.Fprintf(w, "Merge: %s %s\n",
			database.ShortOid(commit.Parents[0]),
			database.ShortOid(commit.Parents[1]))
	}
	fmt.Fprintf(w, "Date: %s\n", commit.Date().Format(DATE_FORMAT))
	fmt.Fprintln(w, commit.Message())
	fmt.Fprintln(w)
}
