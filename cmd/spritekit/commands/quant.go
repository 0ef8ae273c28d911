package commands

import "github.com/spf13/cobra"

func (c *CLI) newQuantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quant",
		Short: "Quantize images that changed since the last run",
		Long: "Walks the configured asset roots and runs the quantizer on every PNG whose\n" +
			"modification time differs from the one recorded in the cache.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Quant(cmd.Context(), c.dir)
		},
	}
}
