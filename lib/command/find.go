package command

import (
	"fmt"
	"io"

	"gitlet/lib/repository"
)

type FindOption struct {
	GlobalOption
}

type Find struct {
	args   []string
	repo   *repository.Repository
	stdout io.Writer
	stderr io.Writer
}

func NewFind(dir string, args []string, options FindOption, stdout, stderr io.Writer) (*Find, error) {
	repo, err := openRepository(dir, options.logger())
	if err != nil {
		return nil, err
	}

	return &Find{
		args:   args,
		repo:   repo,
		stdout: stdout,
		stderr: stderr,
	}, nil
}

func (f *Find) Run() int {
	if len(f.args) != 1 {
		return ReportError(f.stderr, &repository.UserError{Message: INCORRECT_OPERANDS})
	}

	oids, err := repository.NewRevList(f.repo).Find(f.args[0])
	if err != nil {
		return ReportError(f.stderr, err)
	}
	for _, oid := range oids {
		fmt.Fprintln(f.stdout, oid)
	}
	return 0
}
