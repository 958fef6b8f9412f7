package cmd

import (
	"os"

	"gitlet/lib/command"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config <key> [<value>]",
	Short: "Get or set repository options",
	Args:  operands(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		stdout := cmd.OutOrStdout()
		stderr := cmd.ErrOrStderr()

		list, _ := cmd.Flags().GetBool("list")
		options := command.ConfigOption{
			GlobalOption: globalOption,
			List:         list,
		}
		c, err := command.NewConfig(workingDir(), args, options, stdout, stderr)
		if err != nil {
			exit(stderr, err)
		}
		os.Exit(c.Run())
	},
}

func init() {
	configCmd.Flags().BoolP("list", "l", false, "List all options with their values")
	rootCmd.AddCommand(configCmd)
}
