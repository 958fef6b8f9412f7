package cmd

import (
	"os"
	"time"

	"gitlet/lib/command"

	"github.com/spf13/cobra"
)

var commitCmd = &cobra.Command{
	Use:   "commit <message>",
	Short: "Record staged changes",
	Args:  operands(0, 1),
	Run: func(cmd *cobra.Command, args []string) {
		stdout := cmd.OutOrStdout()
		stderr := cmd.ErrOrStderr()

		options := command.CommitOption{GlobalOption: globalOption}
		c, err := command.NewCommit(workingDir(), args, options, stdout, stderr)
		if err != nil {
			exit(stderr, err)
		}
		os.Exit(c.Run(time.Now()))
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
}
