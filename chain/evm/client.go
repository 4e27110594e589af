package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/smartcontractkit/wallet-providers/custody"
	"github.com/smartcontractkit/wallet-providers/network"
	"github.com/smartcontractkit/wallet-providers/pkg/logger"
)

const (
	// DefaultPollInterval is the default interval between receipt queries.
	DefaultPollInterval = time.Second
	// DefaultReceiptTimeout is the default time to wait for a receipt.
	DefaultReceiptTimeout = 2 * time.Minute
)

// Client is a chain client bound to one custodial wallet and one EVM network.
type Client struct {
	signer  custody.Signer
	wallet  custody.Wallet
	address common.Address
	chain   network.Chain
	chainID *big.Int
	onchain OnchainClient

	pollInterval   time.Duration
	receiptTimeout time.Duration
	lggr           logger.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithPollInterval sets the interval between receipt queries. Non-positive values are ignored.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithReceiptTimeout sets how long WaitForTransactionReceipt waits before giving up.
// Non-positive values are ignored.
func WithReceiptTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.receiptTimeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(lggr logger.Logger) Option {
	return func(c *Client) {
		c.lggr = lggr
	}
}

// NewClient binds a chain client to wallet on chain.
func NewClient(
	signer custody.Signer, wallet custody.Wallet, chain network.Chain, onchain OnchainClient, opts ...Option,
) (*Client, error) {
	if signer == nil {
		return nil, errors.New("signer is required")
	}
	if onchain == nil {
		return nil, errors.New("onchain client is required")
	}
	if chain.ID == 0 {
		return nil, errors.New("chain id is required")
	}

	address, err := ParseAddress(wallet.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet address: %w", err)
	}

	c := &Client{
		signer:         signer,
		wallet:         wallet,
		address:        address,
		chain:          chain,
		chainID:        new(big.Int).SetUint64(chain.ID),
		onchain:        onchain,
		pollInterval:   DefaultPollInterval,
		receiptTimeout: DefaultReceiptTimeout,
		lggr:           logger.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.lggr = c.lggr.With("chain", chain.Name, "address", address.Hex())

	return c, nil
}

// Address returns the wallet address.
func (c *Client) Address() common.Address {
	return c.address
}

// Chain returns the chain the client is bound to.
func (c *Client) Chain() network.Chain {
	return c.chain
}

// SignMessage signs an EIP-191 personal message.
func (c *Client) SignMessage(ctx context.Context, message []byte) ([]byte, error) {
	sig, err := c.signer.SignMessage(ctx, c.wallet.ID, message)
	if err != nil {
		return nil, fmt.Errorf("sign message: %w", err)
	}

	return sig, nil
}

// SignTypedData signs EIP-712 typed data.
func (c *Client) SignTypedData(ctx context.Context, data apitypes.TypedData) ([]byte, error) {
	sig, err := c.signer.SignTypedData(ctx, c.wallet.ID, data)
	if err != nil {
		return nil, fmt.Errorf("sign typed data: %w", err)
	}

	return sig, nil
}

// SignTransaction fills in req, builds an EIP-1559 transaction and has it signed by the custody
// service. The signature is checked to belong to the wallet.
func (c *Client) SignTransaction(ctx context.Context, req *TxRequest) (*types.Transaction, error) {
	tx, err := c.buildTransaction(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("prepare transaction: %w", err)
	}

	signed, err := c.signer.SignTransaction(ctx, c.wallet.ID, tx, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	from, err := types.Sender(types.LatestSignerForChainID(c.chainID), signed)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: invalid signature: %w", err)
	}
	if from != c.address {
		return nil, fmt.Errorf("sign transaction: signed by %s, want %s", from.Hex(), c.address.Hex())
	}

	return signed, nil
}

// SendTransaction signs req and broadcasts it. Broadcast failures wrap [ErrBroadcast].
func (c *Client) SendTransaction(ctx context.Context, req *TxRequest) (common.Hash, error) {
	signed, err := c.SignTransaction(ctx, req)
	if err != nil {
		return common.Hash{}, err
	}

	if err := c.onchain.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("%w %s: %w", ErrBroadcast, signed.Hash().Hex(), err)
	}

	c.lggr.Infow("Sent transaction", "txHash", signed.Hash().Hex(), "nonce", signed.Nonce())

	return signed.Hash(), nil
}

// GetBalance returns the wallet balance in wei at the latest block.
func (c *Client) GetBalance(ctx context.Context) (*big.Int, error) {
	balance, err := c.onchain.BalanceAt(ctx, c.address, nil)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}

// GetChainID asks the node for its chain id.
func (c *Client) GetChainID(ctx context.Context) (*big.Int, error) {
	id, err := c.onchain.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}

	return id, nil
}
