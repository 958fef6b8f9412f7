package command

import (
	"io"

	"gitlet/lib/repository"
)

type BranchOption struct {
	GlobalOption
}

type Branch struct {
	args   []string
	repo   *repository.Repository
	stdout io.Writer
	stderr io.Writer
}

func NewBranch(dir string, args []string, options BranchOption, stdout, stderr io.Writer) (*Branch, error) {
	repo, err := openRepository(dir, options.logger())
	if err != nil {
		return nil, err
	}

	return &Branch{
		args:   args,
		repo:   repo,
		stdout: stdout,
		stderr: stderr,
	}, nil
}

func (b *Branch) Run() int {
	if len(b.args) != 1 {
		return ReportError(b.stderr, &repository.UserError{Message: INCORRECT_OPERANDS})
	}
	if err := b.repo.Branch(b.args[0]); err != nil {
		return ReportError(b.stderr, err)
	}
	return 0
}

type RmBranchOption struct {
	GlobalOption
}

type RmBranch struct {
	args   []string
	repo   *repository.Repository
	stdout io.Writer
	stderr io.Writer
}

func NewRmBranch(dir string, args []string, options RmBranchOption, stdout, stderr io.Writer) (*RmBranch, error) {
	repo, err := openRepository(dir, options.logger())
	if err != nil {
		return nil, err
	}

	return &RmBranch{
		args:   args,
		repo:   repo,
		stdout: stdout,
		stderr: stderr,
	}, nil
}

func (r *RmBranch) Run() int {
	if len(r.args) != 1 {
		return ReportError(r.stderr, &repository.UserError{Message: INCORRECT_OPERANDS})
	}
	if err := r.repo.RemoveBranch(r.args[0]); err != nil {
		return ReportError(r.stderr, err)
	}
	return 0
}
