// Package evm implements the chain client of a custodial wallet on an EVM network.
//
// A [Client] is bound to a single wallet and a single network. Signing is delegated to a
// custody.Signer, and every read or broadcast goes through an [OnchainClient].
package evm

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrBroadcast is returned when the network rejects a signed transaction.
	ErrBroadcast = errors.New("failed to broadcast transaction")
	// ErrReceiptTimeout is returned when no receipt is found before the receipt timeout.
	ErrReceiptTimeout = errors.New("timed out waiting for transaction receipt")
)

// OnchainClient is an EVM chain client.
// For EVM specifically we can use existing geth interface to abstract chain clients.
type OnchainClient interface {
	bind.ContractBackend
	bind.DeployBackend

	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// TxRequest describes a transaction to send from the wallet. Nil or zero fields are filled in
// before signing: the pending nonce, an estimated gas limit and EIP-1559 fees.
type TxRequest struct {
	To                   *common.Address
	Value                *big.Int
	Data                 []byte
	Gas                  uint64
	Nonce                *uint64
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// FeesPerGas are EIP-1559 fee caps.
type FeesPerGas struct {
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// ReadContractParams describes a read only contract call.
type ReadContractParams struct {
	Address common.Address
	ABI     abi.ABI
	Method  string
	Args    []any
	// BlockNumber selects the block to read at. Nil reads the latest block.
	BlockNumber *big.Int
}
