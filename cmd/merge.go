package cmd

import (
	"os"
	"time"

	"gitlet/lib/command"

	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <branch>",
	Short: "Merge a branch into the current branch",
	Args:  operands(1, 1),
	Run: func(cmd *cobra.Command, args []string) {
		stdout := cmd.OutOrStdout()
		stderr := cmd.ErrOrStderr()

		options := command.MergeOption{GlobalOption: globalOption}
		c, err := command.NewMerge(workingDir(), args, options, stdout, stderr)
		if err != nil {
			exit(stderr, err)
		}
		os.Exit(c.Run(time.Now()))
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
