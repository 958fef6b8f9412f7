package cmd

import (
	"os"

	"gitlet/lib/command"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <commit>",
	Short: "Check out a commit and move the current branch to it",
	Args:  operands(1, 1),
	Run: func(cmd *cobra.Command, args []string) {
		stdout := cmd.OutOrStdout()
		stderr := cmd.ErrOrStderr()

		options := command.ResetOption{GlobalOption: globalOption}
		c, err := command.NewReset(workingDir(), args, options, stdout, stderr)
		if err != nil {
			exit(stderr, err)
		}
		os.Exit(c.Run())
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
