package command

import (
	"fmt"
	"io"

	"gitlet/lib/repository"

	"github.com/fatih/color"
)

type StatusOption struct {
	GlobalOption
}

type Status struct {
	repo   *repository.Repository
	stdout io.Writer
	stderr io.Writer
}

func NewStatus(dir string, args []string, options StatusOption, stdout, stderr io.Writer) (*Status, error) {
	repo, err := openRepository(dir, options.logger())
	if err != nil {
		return nil, err
	}

	return &Status{
		repo:   repo,
		stdout: stdout,
		stderr: stderr,
	}, nil
}

func (s *Status) Run() int {
	status, err := s.repo.Status()
	if err != nil {
		return ReportError(s.stderr, err)
	}

	s.printBranches(status)
	s.printList("Staged Files", status.Staged)
	s.printList("Removed Files", status.Removed)
	s.printChanges(status)
	s.printList("Untracked Files", status.Untracked)
	return 0
}

func (s *Status) header(title string) {
	color.New(color.Bold).Fprintf(s.stdout, "=== %s ===\n", title)
}

func (s *Status) printBranches(status *repository.Status) {
	s.header("Branches")
	for _, name := range status.Branches {
		if name == status.CurrentBranch {
			color.New(color.FgGreen).Fprintf(s.stdout, "*%s\n", name)
		} else {
			fmt.Fprintln(s.stdout, name)
		}
	}
	fmt.Fprintln(s.stdout)
}

func (s *Status) printList(title string, paths []string) {
	s.header(title)
	for _, path := range paths {
		fmt.Fprintln(s.stdout, path)
	}
	fmt.Fprintln(s.stdout)
}

func (s *Status) printChanges(status *repository.Status) {
	s.header("Modifications Not Staged For Commit")
	status.WorkspaceChanges.Iterate(func(path string, change repository.ChangeType) {
		fmt.Fprintf(s.stdout, "%s (%s)\n", path, change)
	})
	fmt.Fprintln(s.stdout)
}
