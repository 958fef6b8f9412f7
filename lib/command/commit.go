package command

import (
	"io"
	"time"

	"gitlet/lib/database"
	"gitlet/lib/repository"

	"go.uber.org/zap"
)

type CommitOption struct {
	GlobalOption
	Message string
}

type Commit struct {
	repo    *repository.Repository
	options CommitOption
	stdout  io.Writer
	stderr  io.Writer
}

func NewCommit(dir string, args []string, options CommitOption, stdout, stderr io.Writer) (*Commit, error) {
	repo, err := openRepository(dir, options.logger())
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		options.Message = args[0]
	}

	return &Commit{
		repo:    repo,
		options: options,
		stdout:  stdout,
		stderr:  stderr,
	}, nil
}

func (c *Commit) Run(now time.Time) int {
	commit, err := c.repo.Commit(c.options.Message, now)
	if err != nil {
		return ReportError(c.stderr, err)
	}

	c.options.logger().Info("created commit",
		zap.String("oid", commit.Oid()),
		zap.String("short", database.ShortOid(commit.Oid())))
	return 0
}
