package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newIsVCSDirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "is-vcs-dir <path>...",
		Short: "Report whether each path names the TFVC metadata directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			results, err := c.app.IsVCSDir(args)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), results)
			}
			out := newOutput(cmd.OutOrStdout())
			for _, r := range results {
				printVerdict(out, r.ControlDir, r.Path)
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print results as JSON")
	return cmd
}

func (c *CLI) newVCSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vcs",
		Short: "Print the identity of the supported version control system",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.app.SupportedVCS())
		},
	}
}
