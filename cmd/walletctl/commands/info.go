package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/wallet-providers/wallet"
)

func newAddressCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Print the wallet address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProvider(cmd, cfg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), p.Address())

			return err
		},
	}
}

func newNetworkCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "network",
		Short: "Print the network the wallet is bound to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProvider(cmd, cfg)
			if err != nil {
				return err
			}

			return printJSON(cmd, p.Network())
		},
	}
}

type balanceFlags struct {
	wei bool
}

func newBalanceCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print the wallet balance in the native currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wei, _ := cmd.Flags().GetBool("wei")

			return runBalance(cmd, cfg, balanceFlags{wei: wei})
		},
	}
	cmd.Flags().Bool("wei", false, "Print the balance in wei")

	return cmd
}

func runBalance(cmd *cobra.Command, cfg Config, f balanceFlags) error {
	p, err := loadProvider(cmd, cfg)
	if err != nil {
		return err
	}

	balance, err := p.Balance(cmd.Context())
	if err != nil {
		return err
	}

	if f.wei {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), balance.String())

		return err
	}

	currency := p.NativeCurrency()
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", wallet.FormatUnits(balance, currency.Decimals), currency.Symbol)

	return err
}
