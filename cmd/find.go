package cmd

import (
	"os"

	"gitlet/lib/command"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <message>",
	Short: "Print the ids of commits with the given message",
	Args:  operands(1, 1),
	Run: func(cmd *cobra.Command, args []string) {
		stdout := cmd.OutOrStdout()
		stderr := cmd.ErrOrStderr()

		options := command.FindOption{GlobalOption: globalOption}
		c, err := command.NewFind(workingDir(), args, options, stdout, stderr)
		if err != nil {
			exit(stderr, err)
		}
		os.Exit(c.Run())
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
