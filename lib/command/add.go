package command

import (
	"io"

	"gitlet/lib/repository"
)

type AddOption struct {
	GlobalOption
}

type Add struct {
	args   []string
	repo   *repository.Repository
	stdout io.Writer
	stderr io.Writer
}

func NewAdd(dir string, args []string, options AddOption, stdout, stderr io.Writer) (*Add, error) {
	repo, err := openRepository(dir, options.logger())
	if err != nil {
		return nil, err
	}

	return &Add{
		args:   args,
		repo:   repo,
		stdout: stdout,
		stderr: stderr,
	}, nil
}

func (a *Add) Run() int {
	if len(a.args) == 0 {
		return ReportError(a.stderr, &repository.UserError{Message: INCORRECT_OPERANDS})
	}

	for _, path := range a.args {
		if err := a.repo.Add(path); err != nil {
			return ReportError(a.stderr, err)
		}
	}
	return 0
}
