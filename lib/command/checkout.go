package command

import (
	"io"

	"gitlet/lib/repository"

	"go.uber.org/zap"
)

type CheckOutOption struct {
	GlobalOption
}

// CheckOut takes one of three operand shapes:
//
//	-- <file>
//	<commit id> -- <file>
//	<branch>
type CheckOut struct {
	args    []string
	repo    *repository.Repository
	options CheckOutOption
	stdout  io.Writer
	stderr  io.Writer
}

func NewCheckOut(dir string, args []string, options CheckOutOption, stdout, stderr io.Writer) (*CheckOut, error) {
	repo, err := openRepository(dir, options.logger())
	if err != nil {
		return nil, err
	}

	return &CheckOut{
		args:    args,
		repo:    repo,
		options: options,
		stdout:  stdout,
		stderr:  stderr,
	}, nil
}

func (c *CheckOut) Run() int {
	var err error

	switch {
	case len(c.args) == 2 && c.args[0] == "--":
		err = c.repo.CheckoutHeadFile(c.args[1])
	case len(c.args) == 3 && c.args[1] == "--":
		err = c.repo.CheckoutRevisionFile(c.args[0], c.args[2])
	case len(c.args) == 1 && c.args[0] != "--":
		err = c.repo.CheckoutBranch(c.args[0])
		if err == nil {
			c.options.logger().Info("switched branch", zap.String("branch", c.args[0]))
		}
	default:
		err = &repository.UserError{Message: INCORRECT_OPERANDS}
	}

	if err != nil {
		return ReportError(c.stderr, err)
	}
	return 0
}
