package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// baseFeeMultiplier scales the latest base fee to leave room for base fee increases while the
	// transaction is pending, as baseFeeMultiplierNum / baseFeeMultiplierDen.
	baseFeeMultiplierNum = big.NewInt(6)
	baseFeeMultiplierDen = big.NewInt(5)
)

// EstimateFeesPerGas returns EIP-1559 fee caps: the suggested tip and 1.2 times the latest base
// fee plus the tip. Chains without a base fee get the legacy gas price for both.
func (c *Client) EstimateFeesPerGas(ctx context.Context) (FeesPerGas, error) {
	head, err := c.onchain.HeaderByNumber(ctx, nil)
	if err != nil {
		return FeesPerGas{}, fmt.Errorf("estimate fees: get latest header: %w", err)
	}

	if head.BaseFee == nil {
		gasPrice, gerr := c.onchain.SuggestGasPrice(ctx)
		if gerr != nil {
			return FeesPerGas{}, fmt.Errorf("estimate fees: suggest gas price: %w", gerr)
		}

		return FeesPerGas{MaxFeePerGas: gasPrice, MaxPriorityFeePerGas: gasPrice}, nil
	}

	tip, err := c.onchain.SuggestGasTipCap(ctx)
	if err != nil {
		return FeesPerGas{}, fmt.Errorf("estimate fees: suggest gas tip cap: %w", err)
	}

	maxFee := new(big.Int).Mul(head.BaseFee, baseFeeMultiplierNum)
	maxFee.Div(maxFee, baseFeeMultiplierDen)
	maxFee.Add(maxFee, tip)

	return FeesPerGas{MaxFeePerGas: maxFee, MaxPriorityFeePerGas: tip}, nil
}

// EstimateGas estimates the gas limit of req sent from the wallet.
func (c *Client) EstimateGas(ctx context.Context, req *TxRequest) (uint64, error) {
	if req == nil {
		return 0, errors.New("estimate gas: transaction request is required")
	}

	gas, err := c.onchain.EstimateGas(ctx, ethereum.CallMsg{
		From:      c.address,
		To:        req.To,
		Value:     req.Value,
		Data:      req.Data,
		GasFeeCap: req.MaxFeePerGas,
		GasTipCap: req.MaxPriorityFeePerGas,
	})
	if err != nil {
		return 0, fmt.Errorf("estimate gas: %w", withRevertReason(err))
	}

	return gas, nil
}

// buildTransaction fills in the missing fields of req and returns the unsigned transaction.
// req is not modified.
func (c *Client) buildTransaction(ctx context.Context, req *TxRequest) (*types.Transaction, error) {
	if req == nil {
		return nil, errors.New("transaction request is required")
	}

	r := *req
	if r.Value == nil {
		r.Value = new(big.Int)
	}
	if r.Value.Sign() < 0 {
		return nil, errors.New("value must not be negative")
	}

	if r.Nonce == nil {
		nonce, err := c.onchain.PendingNonceAt(ctx, c.address)
		if err != nil {
			return nil, fmt.Errorf("get pending nonce: %w", err)
		}
		r.Nonce = &nonce
	}

	if r.MaxFeePerGas == nil || r.MaxPriorityFeePerGas == nil {
		fees, err := c.EstimateFeesPerGas(ctx)
		if err != nil {
			return nil, err
		}
		if r.MaxFeePerGas == nil {
			r.MaxFeePerGas = fees.MaxFeePerGas
		}
		if r.MaxPriorityFeePerGas == nil {
			r.MaxPriorityFeePerGas = fees.MaxPriorityFeePerGas
		}
	}
	if r.MaxPriorityFeePerGas.Cmp(r.MaxFeePerGas) > 0 {
		return nil, fmt.Errorf("max priority fee per gas %s is higher than max fee per gas %s",
			r.MaxPriorityFeePerGas, r.MaxFeePerGas,
		)
	}

	if r.Gas == 0 {
		gas, err := c.EstimateGas(ctx, &r)
		if err != nil {
			return nil, err
		}
		r.Gas = gas
	}

	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   c.chainID,
		Nonce:     *r.Nonce,
		GasTipCap: r.MaxPriorityFeePerGas,
		GasFeeCap: r.MaxFeePerGas,
		Gas:       r.Gas,
		To:        r.To,
		Value:     r.Value,
		Data:      r.Data,
	}), nil
}
