// Package wallet provides a wallet backed by a custodial key service on an EVM network.
//
// A [Provider] is configured once with [New]: the network is resolved, the custodial wallet is
// fetched or created, and a chain client is bound to both. The provider is immutable afterwards
// and safe for concurrent use.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/smartcontractkit/wallet-providers/chain/evm"
	"github.com/smartcontractkit/wallet-providers/custody"
	"github.com/smartcontractkit/wallet-providers/custody/kms"
	"github.com/smartcontractkit/wallet-providers/custody/privy"
	"github.com/smartcontractkit/wallet-providers/network"
	"github.com/smartcontractkit/wallet-providers/pkg/logger"
)

// Provider is a configured custodial EVM wallet.
type Provider struct {
	custodyName string
	wallet      custody.Wallet
	network     network.Network
	chain       network.Chain
	client      ChainClient

	// authorizationPrivateKey is kept for ExportWallet only.
	authorizationPrivateKey *string

	lggr logger.Logger
}

// New configures a provider. It validates cfg, resolves the network, fetches the wallet named by
// cfg.WalletID or creates a new one, and binds a chain client. No provider is returned unless
// every step succeeds.
func New(ctx context.Context, cfg Config, opts ...Option) (*Provider, error) {
	const op = "New"

	o := options{
		registry: network.DefaultRegistry(),
		lggr:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	lggr := o.lggr.Named("wallet")

	if err := cfg.Validate(); err != nil {
		return nil, newError(ErrConfiguration, op, err.Error(), nil)
	}

	netw, err := resolveNetwork(o.registry, cfg, lggr)
	if err != nil {
		return nil, newError(ErrNetworkResolution, op, "failed to resolve network", err)
	}

	chain, err := o.registry.Chain(netw)
	if err != nil {
		return nil, newError(ErrNetworkResolution, op, "failed to resolve network", err)
	}

	client := o.custody
	if client == nil {
		client, err = newCustodyClient(cfg, lggr)
		if err != nil {
			return nil, newError(ErrConfiguration, op, "invalid custody configuration", err)
		}
	}

	w, err := fetchOrCreateWallet(ctx, client, cfg, lggr)
	if err != nil {
		return nil, err
	}

	factory := o.chainFactory
	if factory == nil {
		factory = NewRPCChainClientFactory(lggr)
	}

	cc, err := factory(ctx, client, w, chain)
	if err != nil {
		return nil, newError(ErrConfiguration, op, "failed to bind chain client", err)
	}

	p := &Provider{
		custodyName: client.Name(),
		wallet:      w,
		network:     netw,
		chain:       chain,
		client:      cc,
		lggr:        lggr.With("walletID", w.ID, "network", netw.NetworkID),
	}
	if cfg.AuthorizationPrivateKey != "" {
		key := cfg.AuthorizationPrivateKey
		p.authorizationPrivateKey = &key
	}

	p.lggr.Infow("Wallet provider configured", "address", w.Address, "custody", p.custodyName)

	return p, nil
}

// resolveNetwork resolves the configured network. The chain id wins when both a chain id and a
// network id are configured.
func resolveNetwork(r *network.Registry, cfg Config, lggr logger.Logger) (network.Network, error) {
	netw, err := r.Resolve(cfg.NetworkID, cfg.ChainID)
	if err != nil {
		return network.Network{}, err
	}

	if cfg.ChainID != "" && cfg.NetworkID != "" && cfg.NetworkID != netw.NetworkID {
		lggr.Warnw("Network id does not match chain id, using the chain id",
			"networkID", cfg.NetworkID, "chainID", cfg.ChainID, "resolved", netw.NetworkID,
		)
	}

	return netw, nil
}

func newCustodyClient(cfg Config, lggr logger.Logger) (custody.Client, error) {
	switch cfg.custodyName() {
	case CustodyKMS:
		return kms.New(kms.Config{Region: cfg.KMSRegion, AWSProfile: cfg.AWSProfile}, lggr)
	default:
		return privy.NewClient(cfg.Credentials(), privy.WithLogger(lggr))
	}
}

// fetchOrCreateWallet returns the configured wallet, creating one when no wallet id is set. The
// custody error is logged and replaced by a uniform message.
func fetchOrCreateWallet(
	ctx context.Context, client custody.Client, cfg Config, lggr logger.Logger,
) (custody.Wallet, error) {
	const op = "New"

	if cfg.WalletID != "" {
		w, err := client.GetWallet(ctx, cfg.WalletID)
		if err != nil {
			lggr.Errorw("Failed to fetch wallet", "custody", client.Name(), "walletID", cfg.WalletID, "err", err)

			return custody.Wallet{}, newError(ErrCustody, op, "failed to fetch wallet", err)
		}

		return w, nil
	}

	w, err := client.Create(ctx, cfg.createRequest())
	if err != nil {
		lggr.Errorw("Failed to create wallet", "custody", client.Name(), "err", err)

		return custody.Wallet{}, newError(ErrCustody, op, "failed to create wallet", err)
	}

	return w, nil
}

// Address returns the wallet address.
func (p *Provider) Address() string {
	return p.wallet.Address
}

// Network returns the network the wallet is bound to.
func (p *Provider) Network() network.Network {
	return p.network
}

// NativeCurrency returns the currency balances and native transfers are denominated in.
func (p *Provider) NativeCurrency() network.NativeCurrency {
	c := p.chain.NativeCurrency
	if c.Decimals == 0 {
		c.Decimals = defaultDecimals
	}

	return c
}

// Name returns the provider name, e.g. "privy_evm_wallet_provider".
func (p *Provider) Name() string {
	return p.custodyName + "_evm_wallet_provider"
}

// SignMessage signs message as an EIP-191 personal message.
func (p *Provider) SignMessage(ctx context.Context, message []byte) (hexutil.Bytes, error) {
	sig, err := p.client.SignMessage(ctx, message)
	if err != nil {
		return nil, newError(ErrSigning, "SignMessage", "failed to sign message", err)
	}

	return sig, nil
}

// SignTypedData signs EIP-712 typed data.
func (p *Provider) SignTypedData(ctx context.Context, data apitypes.TypedData) (hexutil.Bytes, error) {
	sig, err := p.client.SignTypedData(ctx, data)
	if err != nil {
		return nil, newError(ErrSigning, "SignTypedData", "failed to sign typed data", err)
	}

	return sig, nil
}

// SignTransaction signs req and returns the binary encoded signed transaction.
func (p *Provider) SignTransaction(ctx context.Context, req *evm.TxRequest) (hexutil.Bytes, error) {
	const op = "SignTransaction"

	tx, err := p.client.SignTransaction(ctx, req)
	if err != nil {
		return nil, newError(ErrSigning, op, "failed to sign transaction", err)
	}

	raw, err := tx.MarshalBinary()
	if err != nil {
		return nil, newError(ErrSigning, op, "failed to encode signed transaction", err)
	}

	return raw, nil
}

// SendTransaction signs and broadcasts req and returns the transaction hash.
func (p *Provider) SendTransaction(ctx context.Context, req *evm.TxRequest) (common.Hash, error) {
	return p.sendTransaction(ctx, "SendTransaction", req)
}

// NativeTransfer sends amount, a decimal string in the native currency (e.g. "0.5" ether), to
// the address to. Both are validated before any remote call.
func (p *Provider) NativeTransfer(ctx context.Context, to string, amount string) (common.Hash, error) {
	const op = "NativeTransfer"

	addr, err := evm.ParseAddress(to)
	if err != nil {
		return common.Hash{}, newError(ErrValueParse, op, "invalid destination address", err)
	}

	value, err := ParseUnits(amount, p.NativeCurrency().Decimals)
	if err != nil {
		return common.Hash{}, newError(ErrValueParse, op, "invalid amount", err)
	}

	return p.sendTransaction(ctx, op, &evm.TxRequest{To: &addr, Value: value})
}

func (p *Provider) sendTransaction(ctx context.Context, op string, req *evm.TxRequest) (common.Hash, error) {
	hash, err := p.client.SendTransaction(ctx, req)
	if err != nil {
		if errors.Is(err, evm.ErrBroadcast) {
			return common.Hash{}, newError(ErrBroadcast, op, "failed to broadcast transaction", err)
		}

		return common.Hash{}, newError(ErrSigning, op, "failed to sign transaction", err)
	}

	return hash, nil
}

// Balance returns the wallet balance in wei.
func (p *Provider) Balance(ctx context.Context) (*big.Int, error) {
	balance, err := p.client.GetBalance(ctx)
	if err != nil {
		return nil, newError(ErrQuery, "Balance", "failed to get balance", err)
	}

	return balance, nil
}

// ChainID asks the node for its chain id.
func (p *Provider) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := p.client.GetChainID(ctx)
	if err != nil {
		return nil, newError(ErrQuery, "ChainID", "failed to get chain id", err)
	}

	return id, nil
}

// WaitForTransactionReceipt waits for txHash to be mined. The wait is bounded by the chain
// client's receipt timeout, reported as ErrTimeout.
func (p *Provider) WaitForTransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	const op = "WaitForTransactionReceipt"

	receipt, err := p.client.WaitForTransactionReceipt(ctx, txHash)
	if err != nil {
		if errors.Is(err, evm.ErrReceiptTimeout) {
			return nil, newError(ErrTimeout, op, fmt.Sprintf("no receipt for %s", txHash.Hex()), err)
		}

		return nil, newError(ErrQuery, op, "failed to get receipt", err)
	}

	return receipt, nil
}

// ReadContract calls a view method of a contract.
func (p *Provider) ReadContract(ctx context.Context, params evm.ReadContractParams) (any, error) {
	result, err := p.client.ReadContract(ctx, params)
	if err != nil {
		return nil, newError(ErrQuery, "ReadContract", "failed to read contract", err)
	}

	return result, nil
}

// EstimateFeesPerGas returns EIP-1559 fee caps for a new transaction.
func (p *Provider) EstimateFeesPerGas(ctx context.Context) (evm.FeesPerGas, error) {
	fees, err := p.client.EstimateFeesPerGas(ctx)
	if err != nil {
		return evm.FeesPerGas{}, newError(ErrQuery, "EstimateFeesPerGas", "failed to estimate fees", err)
	}

	return fees, nil
}

// EstimateGas estimates the gas limit of req.
func (p *Provider) EstimateGas(ctx context.Context, req *evm.TxRequest) (uint64, error) {
	gas, err := p.client.EstimateGas(ctx, req)
	if err != nil {
		return 0, newError(ErrQuery, "EstimateGas", "failed to estimate gas", err)
	}

	return gas, nil
}

// ExportWallet returns the data needed to bind to the same wallet again. Each call returns its
// own copy of the authorization key.
func (p *Provider) ExportWallet() ExportRecord {
	rec := ExportRecord{
		WalletID:  p.wallet.ID,
		ChainID:   p.network.ChainID,
		NetworkID: p.network.NetworkID,
	}
	if p.authorizationPrivateKey != nil {
		key := *p.authorizationPrivateKey
		rec.AuthorizationPrivateKey = &key
	}

	return rec
}
