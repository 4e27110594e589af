package wallet

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/smartcontractkit/wallet-providers/chain/evm"
	"github.com/smartcontractkit/wallet-providers/chain/evm/rpcclient"
	"github.com/smartcontractkit/wallet-providers/custody"
	"github.com/smartcontractkit/wallet-providers/network"
	"github.com/smartcontractkit/wallet-providers/pkg/logger"
)

var (
	_ ChainClient       = (*evm.Client)(nil)
	_ evm.OnchainClient = (*rpcclient.MultiClient)(nil)
)

// ChainClient performs the chain operations of a provider for its bound wallet and network.
type ChainClient interface {
	SignMessage(ctx context.Context, message []byte) ([]byte, error)
	SignTypedData(ctx context.Context, data apitypes.TypedData) ([]byte, error)
	SignTransaction(ctx context.Context, req *evm.TxRequest) (*types.Transaction, error)
	SendTransaction(ctx context.Context, req *evm.TxRequest) (common.Hash, error)
	GetBalance(ctx context.Context) (*big.Int, error)
	GetChainID(ctx context.Context) (*big.Int, error)
	WaitForTransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	ReadContract(ctx context.Context, params evm.ReadContractParams) (any, error)
	EstimateFeesPerGas(ctx context.Context) (evm.FeesPerGas, error)
	EstimateGas(ctx context.Context, req *evm.TxRequest) (uint64, error)
}

// ChainClientFactory binds a chain client to a wallet on a chain.
type ChainClientFactory func(
	ctx context.Context, signer custody.Signer, w custody.Wallet, chain network.Chain,
) (ChainClient, error)

// NewRPCChainClientFactory returns a factory that connects to the chain's RPC endpoints through
// a rpcclient.MultiClient.
func NewRPCChainClientFactory(lggr logger.Logger, opts ...evm.Option) ChainClientFactory {
	return func(
		_ context.Context, signer custody.Signer, w custody.Wallet, chain network.Chain,
	) (ChainClient, error) {
		rpcs := make([]rpcclient.RPC, 0, len(chain.RPCs))
		for _, r := range chain.RPCs {
			pref, err := rpcclient.URLSchemePreferenceFromString(r.PreferredURLScheme)
			if err != nil {
				return nil, fmt.Errorf("rpc %s: %w", r.RPCName, err)
			}

			rpcs = append(rpcs, rpcclient.RPC{
				Name:               r.RPCName,
				HTTPURL:            r.HTTPURL,
				WSURL:              r.WSURL,
				PreferredURLScheme: pref,
			})
		}

		mc, err := rpcclient.NewMultiClient(lggr, rpcclient.RPCConfig{
			ChainSelector: chain.Selector,
			ChainName:     chain.Name,
			ChainID:       chain.ID,
			RPCs:          rpcs,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", chain.Name, err)
		}

		return evm.NewClient(signer, w, chain, mc, append([]evm.Option{evm.WithLogger(lggr)}, opts...)...)
	}
}
