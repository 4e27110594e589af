package commands

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/wallet-providers/chain/evm"
	"github.com/smartcontractkit/wallet-providers/config"
	"github.com/smartcontractkit/wallet-providers/network"
	"github.com/smartcontractkit/wallet-providers/pkg/logger"
	"github.com/smartcontractkit/wallet-providers/wallet"
)

const (
	testAddress = "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"
	testABI     = `[{"type":"function","name":"balanceOf","stateMutability":"view",` +
		`"inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}]`
)

// fakeProvider records the calls it receives and returns canned results.
type fakeProvider struct {
	signed     []byte
	sent       *evm.TxRequest
	transfer   [2]string
	read       evm.ReadContractParams
	waitedFor  common.Hash
	sendErr    error
	privateKey *string
}

func (f *fakeProvider) Address() string { return testAddress }

func (f *fakeProvider) Network() network.Network {
	return network.Network{ProtocolFamily: "evm", ChainID: "84532", NetworkID: "base-sepolia"}
}

func (f *fakeProvider) NativeCurrency() network.NativeCurrency {
	return network.NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18}
}

func (f *fakeProvider) Name() string { return "privy_evm_wallet_provider" }

func (f *fakeProvider) SignMessage(_ context.Context, message []byte) (hexutil.Bytes, error) {
	f.signed = message

	return hexutil.Bytes{0x01, 0x1b}, nil
}

func (f *fakeProvider) SendTransaction(_ context.Context, req *evm.TxRequest) (common.Hash, error) {
	f.sent = req

	return common.HexToHash("0x0a"), f.sendErr
}

func (f *fakeProvider) NativeTransfer(_ context.Context, to string, amount string) (common.Hash, error) {
	f.transfer = [2]string{to, amount}

	return common.HexToHash("0x0b"), nil
}

func (f *fakeProvider) Balance(context.Context) (*big.Int, error) {
	return big.NewInt(1_500_000_000_000_000_000), nil
}

func (f *fakeProvider) WaitForTransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.waitedFor = txHash

	return &types.Receipt{TxHash: txHash, Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(7)}, nil
}

func (f *fakeProvider) ReadContract(_ context.Context, params evm.ReadContractParams) (any, error) {
	f.read = params

	return big.NewInt(42), nil
}

func (f *fakeProvider) ExportWallet() wallet.ExportRecord {
	return wallet.ExportRecord{
		WalletID:                "wallet-1",
		AuthorizationPrivateKey: f.privateKey,
		ChainID:                 "84532",
		NetworkID:               "base-sepolia",
	}
}

// execute runs the root command with args against p and returns the output.
func execute(t *testing.T, p *fakeProvider, args ...string) (string, error) {
	t.Helper()

	var loadedPath string
	cmd, err := NewCommand(Config{
		Logger: logger.Test(t),
		Deps: Deps{
			ConfigLoader: func(path string) (*config.Config, error) {
				loadedPath = path
				return &config.Config{}, nil
			},
			ProviderLoader: func(context.Context, *config.Config, logger.Logger) (Provider, error) {
				return p, nil
			},
		},
	})
	require.NoError(t, err)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(t.Context())
	if err == nil {
		assert.NotEmpty(t, loadedPath)
	}

	return out.String(), err
}

func TestNewCommand_Structure(t *testing.T) {
	t.Parallel()

	cmd, err := NewCommand(Config{Logger: logger.Nop()})
	require.NoError(t, err)

	assert.Equal(t, "walletctl", cmd.Use)
	assert.NotEmpty(t, cmd.Long)

	f := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, f)
	assert.Equal(t, "c", f.Shorthand)
	assert.Equal(t, DefaultConfigFile, f.DefValue)

	uses := make([]string, 0, len(cmd.Commands()))
	for _, sc := range cmd.Commands() {
		uses = append(uses, sc.Name())
	}
	assert.ElementsMatch(t, []string{
		"address", "network", "balance", "sign-message", "send", "transfer", "receipt", "read-contract", "export",
	}, uses)
}

func TestNewCommand_MissingLogger(t *testing.T) {
	t.Parallel()

	_, err := NewCommand(Config{})
	require.ErrorContains(t, err, "missing required fields: Logger")
}

func TestCommands_Output(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "address", args: []string{"address"}, want: testAddress + "\n"},
		{
			name: "network",
			args: []string{"network"},
			want: "{\n  \"protocolFamily\": \"evm\",\n  \"chainId\": \"84532\",\n  \"networkId\": \"base-sepolia\"\n}\n",
		},
		{name: "balance", args: []string{"balance"}, want: "1.5 ETH\n"},
		{name: "balance in wei", args: []string{"balance", "--wei"}, want: "1500000000000000000\n"},
		{name: "sign message", args: []string{"sign-message", "Hello, world!"}, want: "0x011b\n"},
		{name: "transfer", args: []string{"transfer", testAddress, "1.0"}, want: common.HexToHash("0x0b").Hex() + "\n"},
		{
			name: "export",
			args: []string{"export", "--config", "other.yml"},
			want: "{\n  \"walletId\": \"wallet-1\",\n  \"authorizationPrivateKey\": null,\n" +
				"  \"chainId\": \"84532\",\n  \"networkId\": \"base-sepolia\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := execute(t, &fakeProvider{}, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSignMessage_Hex(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{}
	_, err := execute(t, p, "sign-message", "--hex", "0xdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, p.signed)

	_, err = execute(t, p, "sign-message", "--hex", "nothex")
	require.ErrorContains(t, err, "invalid hex message")
}

func TestSend(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{}
	out, err := execute(t, p, "send", "--to", testAddress, "--value", "1000", "--data", "0x1234", "--gas", "50000", "--wait")
	require.NoError(t, err)

	require.NotNil(t, p.sent)
	assert.Equal(t, common.HexToAddress(testAddress), *p.sent.To)
	assert.Equal(t, big.NewInt(1000), p.sent.Value)
	assert.Equal(t, []byte{0x12, 0x34}, p.sent.Data)
	assert.Equal(t, uint64(50000), p.sent.Gas)
	assert.Equal(t, common.HexToHash("0x0a"), p.waitedFor)
	assert.Contains(t, out, `"status": "0x1"`)

	_, err = execute(t, &fakeProvider{}, "send")
	require.ErrorContains(t, err, "either --to or --data is required")

	_, err = execute(t, &fakeProvider{}, "send", "--to", testAddress, "--value", "1.5")
	require.ErrorContains(t, err, `invalid value "1.5"`)

	_, err = execute(t, &fakeProvider{sendErr: errors.New("nonce too low")}, "send", "--to", testAddress)
	require.ErrorContains(t, err, "nonce too low")
}

func TestTransfer(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{}
	_, err := execute(t, p, "transfer", testAddress, "0.25")
	require.NoError(t, err)
	assert.Equal(t, [2]string{testAddress, "0.25"}, p.transfer)

	_, err = execute(t, p, "transfer", testAddress)
	require.Error(t, err)
}

func TestReceipt(t *testing.T) {
	t.Parallel()

	hash := common.HexToHash("0x0c")
	p := &fakeProvider{}
	out, err := execute(t, p, "receipt", hash.Hex())
	require.NoError(t, err)
	assert.Equal(t, hash, p.waitedFor)
	assert.Contains(t, out, hash.Hex())

	_, err = execute(t, p, "receipt", "0x1234")
	require.ErrorContains(t, err, "invalid transaction hash")
}

func TestReadContract(t *testing.T) {
	t.Parallel()

	abiFile := filepath.Join(t.TempDir(), "erc20.json")
	require.NoError(t, os.WriteFile(abiFile, []byte(testABI), 0o600))

	for _, abiArg := range []string{testABI, abiFile} {
		p := &fakeProvider{}
		out, err := execute(t, p,
			"read-contract", "--address", testAddress, "--abi", abiArg, "--method", "balanceOf",
			"--arg", testAddress, "--block", "9",
		)
		require.NoError(t, err)
		assert.Equal(t, "42\n", out)
		assert.Equal(t, "balanceOf", p.read.Method)
		assert.Equal(t, []any{common.HexToAddress(testAddress)}, p.read.Args)
		assert.Equal(t, big.NewInt(9), p.read.BlockNumber)
	}

	_, err := execute(t, &fakeProvider{},
		"read-contract", "--address", testAddress, "--abi", testABI, "--method", "totalSupply",
	)
	require.ErrorContains(t, err, `method "totalSupply" not found`)

	_, err = execute(t, &fakeProvider{},
		"read-contract", "--address", testAddress, "--abi", testABI, "--method", "balanceOf",
	)
	require.ErrorContains(t, err, "takes 1 arguments, got 0")
}

func TestExport_ToFile(t *testing.T) {
	t.Parallel()

	key := "wallet-auth:abc"
	out := filepath.Join(t.TempDir(), "wallet.json")

	_, err := execute(t, &fakeProvider{privateKey: &key}, "export", "--out", out)
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"walletId": "wallet-1",
		"authorizationPrivateKey": "wallet-auth:abc",
		"chainId": "84532",
		"networkId": "base-sepolia"
	}`, string(b))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func Test_convertArg(t *testing.T) {
	t.Parallel()

	mustType := func(s string) abi.Type {
		typ, err := abi.NewType(s, "", nil)
		require.NoError(t, err)

		return typ
	}

	tests := []struct {
		name    string
		typ     string
		give    string
		want    any
		wantErr string
	}{
		{name: "address", typ: "address", give: testAddress, want: common.HexToAddress(testAddress)},
		{name: "bool", typ: "bool", give: "true", want: true},
		{name: "string", typ: "string", give: "hi", want: "hi"},
		{name: "bytes", typ: "bytes", give: "0x0102", want: []byte{1, 2}},
		{name: "bytes4", typ: "bytes4", give: "0x01020304", want: [4]byte{1, 2, 3, 4}},
		{name: "bytes4 wrong size", typ: "bytes4", give: "0x01", wantErr: "want 4 bytes, got 1"},
		{name: "uint8", typ: "uint8", give: "255", want: uint8(255)},
		{name: "uint8 overflow", typ: "uint8", give: "256", wantErr: "overflows uint8"},
		{name: "int64 hex", typ: "int64", give: "-0x10", want: int64(-16)},
		{name: "uint256", typ: "uint256", give: "1000000000000000000000", want: mustBig("1000000000000000000000")},
		{name: "negative uint", typ: "uint256", give: "-1", wantErr: "must not be negative"},
		{name: "not a number", typ: "uint256", give: "ten", wantErr: `invalid integer "ten"`},
		{name: "unsupported", typ: "uint256[]", give: "1", wantErr: "unsupported argument type uint256[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := convertArg(mustType(tt.typ), tt.give)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid big int " + s)
	}

	return n
}

func Test_examples(t *testing.T) {
	t.Parallel()

	assert.Empty(t, examples("  "))
	assert.Equal(t, "  # a\n  b", examples("\n\t\t# a\n\t\tb\n"))
	assert.Equal(t, "a\n\t\tb", longDesc("\n\t\ta\n\t\tb\n"))
}
