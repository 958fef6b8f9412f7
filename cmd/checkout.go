package cmd

import (
	"os"

	"gitlet/lib/command"

	"github.com/spf13/cobra"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout [<commit>] -- <file> | checkout <branch>",
	Short: "Restore a file or switch branches",
	Args:  operands(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		stdout := cmd.OutOrStdout()
		stderr := cmd.ErrOrStderr()

		options := command.CheckOutOption{GlobalOption: globalOption}
		c, err := command.NewCheckOut(workingDir(), withDash(args, cmd.ArgsLenAtDash()), options, stdout, stderr)
		if err != nil {
			exit(stderr, err)
		}
		os.Exit(c.Run())
	},
}

// withDash puts back the "--" separator cobra strips from args.
func withDash(args []string, at int) []string {
	if at < 0 {
		return args
	}
	restored := make([]string, 0, len(args)+1)
	restored = append(restored, args[:at]...)
	restored = append(restored, "--")
	return append(restored, args[at:]...)
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
}
