package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/tfroot/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Discover workspace mapping roots below a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			maxDepth, _ := cmd.Flags().GetInt("max-depth")
			concurrency, _ := cmd.Flags().GetInt("concurrency")
			ancestors, _ := cmd.Flags().GetBool("ancestors")
			asJSON, _ := cmd.Flags().GetBool("json")

			opts := app.ScanOptions{
				MaxDepth:    maxDepth,
				Concurrency: concurrency,
				Ancestors:   ancestors,
			}
			if cmd.Flags().Changed("skip") {
				opts.Skip, _ = cmd.Flags().GetStringSlice("skip")
			}

			roots, err := c.app.Scan(cmd.Context(), dir, opts)
			if err != nil {
				return err
			}

			if asJSON {
				if roots == nil {
					roots = []string{}
				}
				return printJSON(cmd.OutOrStdout(), roots)
			}
			for _, r := range roots {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
	cmd.Flags().IntP("max-depth", "d", -1, "Directory levels to descend (default from config)")
	cmd.Flags().IntP("concurrency", "j", 0, "Directories probed concurrently (default from config)")
	cmd.Flags().Bool("ancestors", false, "Also check every parent of the directory")
	cmd.Flags().StringSlice("skip", nil, "Directory names never entered (default from config)")
	cmd.Flags().Bool("json", false, "Print results as JSON")
	return cmd
}
