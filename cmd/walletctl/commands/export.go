package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportLong = longDesc(`
	Prints the wallet id, network and authorization private key needed to bind to the same wallet
	again. The output contains secrets.
`)

func newExportCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the wallet",
		Long:  exportLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString("out")

			p, err := loadProvider(cmd, cfg)
			if err != nil {
				return err
			}

			record := p.ExportWallet()
			if out == "" {
				return printJSON(cmd, record)
			}

			b, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode export: %w", err)
			}
			if err := os.WriteFile(out, b, 0o600); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			cmd.Printf("Exported wallet %s to %s\n", record.WalletID, out)

			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "", "Write the export to this file instead of stdout")

	return cmd
}
