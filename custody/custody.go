// Package custody defines the contract of a custodial wallet service: a remote system that creates
// and holds signing keys and signs on behalf of its callers without revealing the raw keys.
//
// Implementations live in sub packages (privy, kms). Consumers should depend on [Client] so the
// service can be substituted in tests.
package custody

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// Wallet is a managed key record as reported by the custody service.
type Wallet struct {
	// ID is the opaque wallet identifier assigned by the custody service.
	ID string `json:"id"`
	// Address is the public address of the wallet's key.
	Address string `json:"address"`
}

// Credentials are the application credentials presented to the custody service.
//
// WARNING: This data type contains sensitive fields and should not be logged.
type Credentials struct {
	AppID     string
	APIKey    string
	AppSecret string
	// AuthorizationPrivateKey authorizes write operations on wallets owned by an authorization
	// key. Optional.
	AuthorizationPrivateKey string
}

// CreateRequest holds the parameters for creating a new wallet.
type CreateRequest struct {
	// AuthorizationKeyIDs scopes the new wallet to the given authorization keys. Optional.
	AuthorizationKeyIDs []string
}

// Signer signs on behalf of a wallet held by the custody service. Returned signatures are 65
// byte [R || S || V] Ethereum signatures with V in {27, 28}.
type Signer interface {
	// SignMessage signs message using the EIP-191 personal message format.
	SignMessage(ctx context.Context, walletID string, message []byte) ([]byte, error)
	// SignTypedData signs EIP-712 typed data.
	SignTypedData(ctx context.Context, walletID string, data apitypes.TypedData) ([]byte, error)
	// SignTransaction signs tx for chainID and returns the signed transaction.
	SignTransaction(
		ctx context.Context, walletID string, tx *types.Transaction, chainID *big.Int,
	) (*types.Transaction, error)
}

// Client is a custody service client.
type Client interface {
	Signer

	// Name identifies the custody service, e.g. "privy".
	Name() string
	// Create creates a new wallet.
	Create(ctx context.Context, req CreateRequest) (Wallet, error)
	// GetWallet fetches an existing wallet by its identifier.
	GetWallet(ctx context.Context, walletID string) (Wallet, error)
}
