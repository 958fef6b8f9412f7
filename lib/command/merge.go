package command

import (
	"fmt"
	"io"
	"time"

	"gitlet/lib/merge"
	"gitlet/lib/repository"

	"go.uber.org/zap"
)

type MergeOption struct {
	GlobalOption
}

type Merge struct {
	args    []string
	repo    *repository.Repository
	options MergeOption
	stdout  io.Writer
	stderr  io.Writer
}

func NewMerge(dir string, args []string, options MergeOption, stdout, stderr io.Writer) (*Merge, error) {
	repo, err := openRepository(dir, options.logger())
	if err != nil {
		return nil, err
	}

	return &Merge{
		args:    args,
		repo:    repo,
		options: options,
		stdout:  stdout,
		stderr:  stderr,
	}, nil
}

func (m *Merge) Run(now time.Time) int {
	if len(m.args) != 1 {
		return ReportError(m.stderr, &repository.UserError{Message: INCORRECT_OPERANDS})
	}

	result, err := merge.Merge(m.repo, m.args[0], now)
	if err != nil {
		return ReportError(m.stderr, err)
	}

	m.options.logger().Info("merged",
		zap.String("branch", m.args[0]),
		zap.String("oid", result.Commit.Oid()),
		zap.Strings("conflicts", result.Conflicts))
	if result.HasConflicts() {
		fmt.Fprintln(m.stdout, merge.CONFLICT_MESSAGE)
	}
	return 0
}
