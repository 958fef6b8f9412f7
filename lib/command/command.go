package command

import (
	"fmt"
	"io"
	"path/filepath"

	"gitlet/lib/repository"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const INCORRECT_OPERANDS = "Incorrect operands."

// GlobalOption carries settings shared by every command.
type GlobalOption struct {
	Logger *zap.Logger
	Pager  bool
}

func (o GlobalOption) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func newRepository(dir string, logger *zap.Logger) (*repository.Repository, error) {
	rootPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return repository.NewRepository(osfs.New(rootPath), logger), nil
}

// openRepository returns the repository rooted at dir with its stages loaded.
func openRepository(dir string, logger *zap.Logger) (*repository.Repository, error) {
	repo, err := newRepository(dir, logger)
	if err != nil {
		return nil, err
	}
	if err := repo.Open(); err != nil {
		return nil, err
	}
	return repo, nil
}

// ReportError prints err and returns the exit status for it. Errors a user
// can act on are printed as they are and exit with 1.
func ReportError(stderr io.Writer, err error) int {
	var userErr *repository.UserError
	if errors.As(err, &userErr) {
		fmt.Fprintln(stderr, userErr.Message)
		return 1
	}
	fmt.Fprintf(stderr, "fatal: %v\n", err)
	return 128
}
