package cmd

import (
	"os"

	"gitlet/lib/command"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Stage a file for the next commit",
	Args:  operands(1, 1),
	Run: func(cmd *cobra.Command, args []string) {
		stdout := cmd.OutOrStdout()
		stderr := cmd.ErrOrStderr()

		options := command.AddOption{GlobalOption: globalOption}
		c, err := command.NewAdd(workingDir(), args, options, stdout, stderr)
		if err != nil {
			exit(stderr, err)
		}
		os.Exit(c.Run())
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
