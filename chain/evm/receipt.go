package evm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// WaitForTransactionReceipt polls for the receipt of txHash until it is mined or the receipt
// timeout elapses, in which case the error wraps [ErrReceiptTimeout]. Reverted transactions are
// returned like any other receipt.
func (c *Client) WaitForTransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()

	receipt, err := waitMinedWithInterval(waitCtx, c.pollInterval, c.onchain, txHash)
	if err != nil {
		// The caller's context ending is not a receipt timeout.
		if ctx.Err() != nil {
			return nil, fmt.Errorf("wait for receipt of %s: %w", txHash.Hex(), ctx.Err())
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w %s after %s", ErrReceiptTimeout, txHash.Hex(), c.receiptTimeout)
		}

		return nil, fmt.Errorf("wait for receipt of %s: %w", txHash.Hex(), err)
	}

	if receipt.Status == types.ReceiptStatusFailed {
		c.lggr.Warnw("Transaction reverted", "txHash", txHash.Hex(), "block", receipt.BlockNumber)
	}

	return receipt, nil
}

// waitMinedWithInterval queries the receipt of txHash every tick until it is found or ctx ends.
// Lookup errors other than not found are retried on the next tick.
func waitMinedWithInterval(
	ctx context.Context, tick time.Duration, b bind.DeployBackend, txHash common.Hash,
) (*types.Receipt, error) {
	queryTicker := time.NewTicker(tick)
	defer queryTicker.Stop()

	var lastErr error
	for {
		receipt, err := b.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			lastErr = err
		}

		select {
		case <-ctx.Done():
			if lastErr != nil {
				return nil, errors.Join(ctx.Err(), lastErr)
			}

			return nil, ctx.Err()
		case <-queryTicker.C:
		}
	}
}
