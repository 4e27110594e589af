package commands

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/wallet-providers/chain/evm"
)

var (
	readContractLong = longDesc(`
		Calls a view method of a contract and prints the decoded result as JSON. The ABI is given
		inline or as a path to an ABI JSON file. Arguments are given in the order of the method
		inputs and converted to the input types; integers accept decimal or 0x prefixed hex.
	`)

	readContractExample = examples(`
		# Read an ERC-20 balance
		walletctl read-contract --address 0x036CbD53842c5426634e7929541eC2318f3dCF7e --abi erc20.json --method balanceOf --arg 0x5B38Da6a701c568545dCfcB03FcB875f56beddC4
	`)
)

type readContractFlags struct {
	address string
	abi     string
	method  string
	args    []string
	block   int64
}

func newReadContractCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "read-contract",
		Short:   "Call a view method of a contract",
		Long:    readContractLong,
		Example: readContractExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := readContractFlags{}
			f.address, _ = cmd.Flags().GetString("address")
			f.abi, _ = cmd.Flags().GetString("abi")
			f.method, _ = cmd.Flags().GetString("method")
			f.args, _ = cmd.Flags().GetStringArray("arg")
			f.block, _ = cmd.Flags().GetInt64("block")

			return runReadContract(cmd, cfg, f)
		},
	}
	cmd.Flags().String("address", "", "Contract address (required)")
	cmd.Flags().String("abi", "", "Contract ABI as JSON or a path to an ABI file (required)")
	cmd.Flags().String("method", "", "Method name (required)")
	cmd.Flags().StringArray("arg", nil, "Method argument, repeated in input order")
	cmd.Flags().Int64("block", 0, "Block number to read at; latest when 0")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("abi")
	_ = cmd.MarkFlagRequired("method")

	return cmd
}

func runReadContract(cmd *cobra.Command, cfg Config, f readContractFlags) error {
	params, err := f.params()
	if err != nil {
		return err
	}

	p, err := loadProvider(cmd, cfg)
	if err != nil {
		return err
	}

	result, err := p.ReadContract(cmd.Context(), params)
	if err != nil {
		return err
	}

	return printJSON(cmd, result)
}

func (f readContractFlags) params() (evm.ReadContractParams, error) {
	address, err := evm.ParseAddress(f.address)
	if err != nil {
		return evm.ReadContractParams{}, err
	}

	parsed, err := loadABI(f.abi)
	if err != nil {
		return evm.ReadContractParams{}, err
	}

	method, ok := parsed.Methods[f.method]
	if !ok {
		return evm.ReadContractParams{}, fmt.Errorf("method %q not found in ABI", f.method)
	}
	if len(f.args) != len(method.Inputs) {
		return evm.ReadContractParams{}, fmt.Errorf("method %s takes %d arguments, got %d",
			f.method, len(method.Inputs), len(f.args),
		)
	}

	args := make([]any, len(f.args))
	for i, input := range method.Inputs {
		if args[i], err = convertArg(input.Type, f.args[i]); err != nil {
			return evm.ReadContractParams{}, fmt.Errorf("argument %d (%s): %w", i, input.Name, err)
		}
	}

	params := evm.ReadContractParams{
		Address: address,
		ABI:     parsed,
		Method:  f.method,
		Args:    args,
	}
	if f.block > 0 {
		params.BlockNumber = big.NewInt(f.block)
	}

	return params, nil
}

// loadABI parses s as ABI JSON, or reads it from the file s names.
func loadABI(s string) (abi.ABI, error) {
	raw := s
	if !strings.HasPrefix(strings.TrimSpace(s), "[") {
		b, err := os.ReadFile(s)
		if err != nil {
			return abi.ABI{}, fmt.Errorf("failed to read ABI file: %w", err)
		}
		raw = string(b)
	}

	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("invalid ABI: %w", err)
	}

	return parsed, nil
}

// convertArg converts a command line argument into the Go value the ABI packer expects for t.
func convertArg(t abi.Type, s string) (any, error) {
	switch t.T {
	case abi.AddressTy:
		return evm.ParseAddress(s)
	case abi.BoolTy:
		return strconv.ParseBool(s)
	case abi.StringTy:
		return s, nil
	case abi.BytesTy:
		return hexutil.Decode(s)
	case abi.FixedBytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("want %d bytes, got %d", t.Size, len(b))
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))

		return arr.Interface(), nil
	case abi.IntTy, abi.UintTy:
		return convertInt(t, s)
	default:
		return nil, fmt.Errorf("unsupported argument type %s", t.String())
	}
}

func convertInt(t abi.Type, s string) (any, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if t.T == abi.UintTy && n.Sign() < 0 {
		return nil, errors.New("unsigned integer must not be negative")
	}
	if t.Size > 64 {
		return n, nil
	}

	v := reflect.New(t.GetType()).Elem()
	if t.T == abi.UintTy {
		if !n.IsUint64() || v.OverflowUint(n.Uint64()) {
			return nil, fmt.Errorf("%s overflows %s", s, t.String())
		}
		v.SetUint(n.Uint64())

		return v.Interface(), nil
	}

	if !n.IsInt64() || v.OverflowInt(n.Int64()) {
		return nil, fmt.Errorf("%s overflows %s", s, t.String())
	}
	v.SetInt(n.Int64())

	return v.Interface(), nil
}
