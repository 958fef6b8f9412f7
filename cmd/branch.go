package cmd

import (
	"os"

	"gitlet/lib/command"

	"github.com/spf13/cobra"
)

var branchCmd = &cobra.Command{
	Use:   "branch <name>",
	Short: "Create a branch at the current commit",
	Args:  operands(1, 1),
	Run: func(cmd *cobra.Command, args []string) {
		stdout := cmd.OutOrStdout()
		stderr := cmd.ErrOrStderr()

		options := command.BranchOption{GlobalOption: globalOption}
		c, err := command.NewBranch(workingDir(), args, options, stdout, stderr)
		if err != nil {
			exit(stderr, err)
		}
		os.Exit(c.Run())
	},
}

func init() {
	rootCmd.AddCommand(branchCmd)
}
