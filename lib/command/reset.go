package command

import (
	"io"

	"gitlet/lib/repository"
)

type ResetOption struct {
	GlobalOption
}

type Reset struct {
	args   []string
	repo   *repository.Repository
	stdout io.Writer
	stderr io.Writer
}

func NewReset(dir string, args []string, options ResetOption, stdout, stderr io.Writer) (*Reset, error) {
	repo, err := openRepository(dir, options.logger())
	if err != nil {
		return nil, err
	}

	return &Reset{
		args:   args,
		repo:   repo,
		stdout: stdout,
		stderr: stderr,
	}, nil
}

func (r *Reset) Run() int {
	if len(r.args) != 1 {
		return ReportError(r.stderr, &repository.UserError{Message: INCORRECT_OPERANDS})
	}
	if err := r.repo.Reset(r.args[0]); err != nil {
		return ReportError(r.stderr, err)
	}
	return 0
}
