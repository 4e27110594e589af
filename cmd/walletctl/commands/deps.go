package commands

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/smartcontractkit/wallet-providers/chain/evm"
	"github.com/smartcontractkit/wallet-providers/config"
	"github.com/smartcontractkit/wallet-providers/network"
	"github.com/smartcontractkit/wallet-providers/pkg/logger"
	"github.com/smartcontractkit/wallet-providers/wallet"
)

var _ Provider = (*wallet.Provider)(nil)

// Provider is the wallet surface used by the commands.
type Provider interface {
	Address() string
	Network() network.Network
	NativeCurrency() network.NativeCurrency
	Name() string
	SignMessage(ctx context.Context, message []byte) (hexutil.Bytes, error)
	SendTransaction(ctx context.Context, req *evm.TxRequest) (common.Hash, error)
	NativeTransfer(ctx context.Context, to string, amount string) (common.Hash, error)
	Balance(ctx context.Context) (*big.Int, error)
	WaitForTransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	ReadContract(ctx context.Context, params evm.ReadContractParams) (any, error)
	ExportWallet() wallet.ExportRecord
}

// ConfigLoaderFunc loads the configuration from a file, with environment overrides.
type ConfigLoaderFunc func(path string) (*config.Config, error)

// ProviderLoaderFunc configures a wallet provider.
type ProviderLoaderFunc func(ctx context.Context, cfg *config.Config, lggr logger.Logger) (Provider, error)

// defaultProviderLoader is the production implementation that connects to the custody service
// and the network's RPC endpoints.
func defaultProviderLoader(ctx context.Context, cfg *config.Config, lggr logger.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Log.Level != "" {
		l, err := cfg.Logger()
		if err != nil {
			return nil, err
		}
		lggr = l
	}

	registry, err := cfg.NetworkRegistry()
	if err != nil {
		return nil, err
	}

	return wallet.New(ctx, cfg.WalletConfig(),
		wallet.WithLogger(lggr),
		wallet.WithNetworkRegistry(registry),
		wallet.WithChainClientFactory(wallet.NewRPCChainClientFactory(lggr, cfg.ChainOptions()...)),
	)
}

// Deps holds the injectable dependencies for the commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// ConfigLoader loads the configuration.
	// Default: config.Load
	ConfigLoader ConfigLoaderFunc

	// ProviderLoader configures the wallet provider.
	// Default: wallet.New with the configured custody service and RPC endpoints
	ProviderLoader ProviderLoaderFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.Load
	}
	if d.ProviderLoader == nil {
		d.ProviderLoader = defaultProviderLoader
	}
}
