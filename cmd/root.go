package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"gitlet/lib/command"
	"gitlet/lib/config"
	"gitlet/lib/logger"
	"gitlet/lib/repository"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	errNoCommand      = &repository.UserError{Message: "Please enter a command."}
	errUnknownCommand = &repository.UserError{Message: "No command with that name exists."}
	errOperands       = &repository.UserError{Message: command.INCORRECT_OPERANDS}
)

// globalOption is filled in before any subcommand runs.
var globalOption command.GlobalOption

var rootCmd = &cobra.Command{
	Use:           "gitlet",
	Short:         "A small content-addressed version-control system",
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errNoCommand
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}

		gitPath := filepath.Join(dir, repository.GIT_DIR)
		if info, err := os.Stat(gitPath); err != nil || !info.IsDir() {
			gitPath = ""
		}
		cfg, err := config.Load(gitPath)
		if err != nil {
			return err
		}
		if err := cfg.BindFlags(cmd.Flags()); err != nil {
			return err
		}

		log, err := logger.New(cfg.LogLevel(), os.Stderr)
		if err != nil {
			return err
		}

		switch cfg.Color() {
		case "always":
			color.NoColor = false
		case "never":
			color.NoColor = true
		}

		globalOption = command.GlobalOption{
			Logger: log,
			Pager:  cfg.Pager() && term.IsTerminal(int(os.Stdout.Fd())),
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("color", "auto", "When to colorize output: auto, always or never")
	flags.Bool("no-pager", false, "Do not pipe log output into a pager")
}

// operands rejects any argument count outside [least, most].
func operands(least, most int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < least || len(args) > most {
			return errOperands
		}
		return nil
	}
}

func workingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		exit(os.Stderr, err)
	}
	return dir
}

func exit(stderr io.Writer, err error) {
	os.Exit(command.ReportError(stderr, err))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if strings.HasPrefix(err.Error(), "unknown command") {
			err = errUnknownCommand
		}
		exit(os.Stderr, err)
	}
}
