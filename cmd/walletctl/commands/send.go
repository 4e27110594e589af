package commands

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/wallet-providers/chain/evm"
)

var (
	sendLong = longDesc(`
		Signs a transaction with the custodial wallet and broadcasts it. The nonce, fees and gas
		limit are filled in from the network unless given.
	`)

	sendExample = examples(`
		# Call a contract
		walletctl send --to 0x5B38Da6a701c568545dCfcB03FcB875f56beddC4 --data 0xa9059cbb...

		# Send 1 gwei and wait for the receipt
		walletctl send --to 0x5B38Da6a701c568545dCfcB03FcB875f56beddC4 --value 1000000000 --wait
	`)

	transferExample = examples(`
		# Transfer 0.01 of the native currency
		walletctl transfer 0x5B38Da6a701c568545dCfcB03FcB875f56beddC4 0.01
	`)
)

type sendFlags struct {
	to    string
	value string
	data  string
	gas   uint64
	wait  bool
}

func newSendCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "send",
		Short:   "Sign and broadcast a transaction",
		Long:    sendLong,
		Example: sendExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := sendFlags{}
			f.to, _ = cmd.Flags().GetString("to")
			f.value, _ = cmd.Flags().GetString("value")
			f.data, _ = cmd.Flags().GetString("data")
			f.gas, _ = cmd.Flags().GetUint64("gas")
			f.wait, _ = cmd.Flags().GetBool("wait")

			return runSend(cmd, cfg, f)
		},
	}
	cmd.Flags().String("to", "", "Recipient address; empty deploys a contract")
	cmd.Flags().String("value", "0", "Value in wei")
	cmd.Flags().String("data", "", "Calldata as 0x prefixed hex")
	cmd.Flags().Uint64("gas", 0, "Gas limit; estimated when 0")
	waitFlag(cmd)

	return cmd
}

func runSend(cmd *cobra.Command, cfg Config, f sendFlags) error {
	req, err := f.txRequest()
	if err != nil {
		return err
	}

	p, err := loadProvider(cmd, cfg)
	if err != nil {
		return err
	}

	hash, err := p.SendTransaction(cmd.Context(), req)
	if err != nil {
		return err
	}

	return printSent(cmd, p, hash, f.wait)
}

func (f sendFlags) txRequest() (*evm.TxRequest, error) {
	req := &evm.TxRequest{Gas: f.gas}

	if f.to != "" {
		to, err := evm.ParseAddress(f.to)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	value, ok := new(big.Int).SetString(f.value, 10)
	if !ok {
		return nil, fmt.Errorf("invalid value %q", f.value)
	}
	req.Value = value

	if f.data != "" {
		data, err := hexutil.Decode(f.data)
		if err != nil {
			return nil, fmt.Errorf("invalid data: %w", err)
		}
		req.Data = data
	}

	if req.To == nil && len(req.Data) == 0 {
		return nil, errors.New("either --to or --data is required")
	}

	return req, nil
}

func newTransferCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transfer <to> <amount>",
		Short:   "Transfer the native currency",
		Example: transferExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wait, _ := cmd.Flags().GetBool("wait")

			p, err := loadProvider(cmd, cfg)
			if err != nil {
				return err
			}

			hash, err := p.NativeTransfer(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return printSent(cmd, p, hash, wait)
		},
	}
	waitFlag(cmd)

	return cmd
}

func waitFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("wait", false, "Wait for the receipt and print it")
}

// printSent prints the transaction hash, or the receipt when wait is set.
func printSent(cmd *cobra.Command, p Provider, hash common.Hash, wait bool) error {
	if !wait {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), hash.Hex())

		return err
	}

	receipt, err := p.WaitForTransactionReceipt(cmd.Context(), hash)
	if err != nil {
		return err
	}

	return printJSON(cmd, receipt)
}
