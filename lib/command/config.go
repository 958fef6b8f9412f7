package command

import (
	"fmt"
	"io"
	"path/filepath"

	"gitlet/lib/config"
	"gitlet/lib/repository"
)

type ConfigOption struct {
	GlobalOption
	List bool
}

// Config reads one setting, writes one setting, or lists all of them.
type Config struct {
	args    []string
	options ConfigOption
	cfg     *config.Config
	stdout  io.Writer
	stderr  io.Writer
}

func NewConfig(dir string, args []string, options ConfigOption, stdout, stderr io.Writer) (*Config, error) {
	repo, err := newRepository(dir, options.logger())
	if err != nil {
		return nil, err
	}
	if !repo.IsInitialized() {
		return nil, repository.ErrNotInitialized
	}

	rootPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(filepath.Join(rootPath, repo.GitPath()))
	if err != nil {
		return nil, err
	}

	return &Config{
		args:    args,
		options: options,
		cfg:     cfg,
		stdout:  stdout,
		stderr:  stderr,
	}, nil
}

func (c *Config) Run() int {
	switch {
	case c.options.List && len(c.args) == 0:
		for _, key := range config.Keys() {
			value, _ := c.cfg.Get(key)
			fmt.Fprintf(c.stdout, "%s=%s\n", key, value)
		}
		return 0
	case len(c.args) == 1:
		value, err := c.cfg.Get(c.args[0])
		if err != nil {
			fmt.Fprintf(c.stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintln(c.stdout, value)
		return 0
	case len(c.args) == 2:
		if err := c.cfg.Set(c.args[0], c.args[1]); err != nil {
			fmt.Fprintf(c.stderr, "error: %v\n", err)
			return 1
		}
		if err := c.cfg.Save(); err != nil {
			return ReportError(c.stderr, err)
		}
		return 0
	default:
		return ReportError(c.stderr, &repository.UserError{Message: INCORRECT_OPERANDS})
	}
}
