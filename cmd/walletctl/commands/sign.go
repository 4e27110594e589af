package commands

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

var (
	signMessageLong = longDesc(`
		Signs a message as an EIP-191 personal message and prints the 65 byte signature as hex.
	`)

	signMessageExample = examples(`
		# Sign a text message
		walletctl sign-message "Hello, world!"

		# Sign raw bytes given as hex
		walletctl sign-message --hex 0xdeadbeef
	`)
)

func newSignMessageCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sign-message <message>",
		Short:   "Sign a personal message",
		Long:    signMessageLong,
		Example: signMessageExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			isHex, _ := cmd.Flags().GetBool("hex")

			message := []byte(args[0])
			if isHex {
				b, err := hexutil.Decode(args[0])
				if err != nil {
					return fmt.Errorf("invalid hex message: %w", err)
				}
				message = b
			}

			p, err := loadProvider(cmd, cfg)
			if err != nil {
				return err
			}

			sig, err := p.SignMessage(cmd.Context(), message)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), sig.String())

			return err
		},
	}
	cmd.Flags().Bool("hex", false, "Decode the message from 0x prefixed hex")

	return cmd
}
