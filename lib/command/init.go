package command

import (
	"io"
	"os"
	"path/filepath"

	"gitlet/lib/repository"

	"go.uber.org/zap"
)

type InitOption struct {
	GlobalOption
}

type Init struct {
	rootPath string
	options  InitOption
	stdout   io.Writer
	stderr   io.Writer
}

func NewInit(dir string, args []string, options InitOption, stdout, stderr io.Writer) (*Init, error) {
	path := dir
	if len(args) > 0 {
		path = filepath.Join(dir, args[0])
		if filepath.IsAbs(args[0]) {
			path = args[0]
		}
	}

	rootPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return &Init{
		rootPath: rootPath,
		options:  options,
		stdout:   stdout,
		stderr:   stderr,
	}, nil
}

func (i *Init) Run() int {
	if err := os.MkdirAll(i.rootPath, os.ModePerm); err != nil {
		return ReportError(i.stderr, err)
	}

	repo, err := newRepository(i.rootPath, i.options.logger())
	if err != nil {
		return ReportError(i.stderr, err)
	}
	root, err := repo.Init()
	if err != nil {
		return ReportError(i.stderr, err)
	}

	i.options.logger().Debug("initialized repository",
		zap.String("path", filepath.Join(i.rootPath, repository.GIT_DIR)),
		zap.String("root", root.Oid()))
	return 0
}
