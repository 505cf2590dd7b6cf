package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tfroot/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Report whether each path is a workspace mapping root",
		Long: "Report whether each path is a workspace mapping root.\n\n" +
			"Exits non-zero when any path is not a mapping root.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			asJSON, _ := cmd.Flags().GetBool("json")

			results, err := c.app.Check(cmd.Context(), args)
			if err != nil {
				return err
			}

			if asJSON {
				if err := printJSON(cmd.OutOrStdout(), results); err != nil {
					return err
				}
			} else {
				out := newOutput(cmd.OutOrStdout())
				for _, r := range results {
					printVerdict(out, r.Root, r.Path)
				}
			}

			for _, r := range results {
				if !r.Root {
					return domain.ErrNotMappingRoot
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print results as JSON")
	return cmd
}
