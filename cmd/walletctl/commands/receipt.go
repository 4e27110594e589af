package commands

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

func newReceiptCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt <tx hash>",
		Short: "Wait for a transaction receipt and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := hexutil.Decode(args[0])
			if err != nil || len(b) != common.HashLength {
				return fmt.Errorf("invalid transaction hash %q", args[0])
			}

			p, err := loadProvider(cmd, cfg)
			if err != nil {
				return err
			}

			receipt, err := p.WaitForTransactionReceipt(cmd.Context(), common.BytesToHash(b))
			if err != nil {
				return err
			}

			return printJSON(cmd, receipt)
		},
	}
}
