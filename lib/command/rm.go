package command

import (
	"io"

	"gitlet/lib/repository"
)

type RmOption struct {
	GlobalOption
}

type Rm struct {
	args   []string
	repo   *repository.Repository
	stdout io.Writer
	stderr io.Writer
}

func NewRm(dir string, args []string, options RmOption, stdout, stderr io.Writer) (*Rm, error) {
	repo, err := openRepository(dir, options.logger())
	if err != nil {
		return nil, err
	}

	return &Rm{
		args:   args,
		repo:   repo,
		stdout: stdout,
		stderr: stderr,
	}, nil
}

func (r *Rm) Run() int {
	if len(r.args) != 1 {
		return ReportError(r.stderr, &repository.UserError{Message: INCORRECT_OPERANDS})
	}

	if err := r.repo.Remove(r.args[0]); err != nil {
		return ReportError(r.stderr, err)
	}
	return 0
}
