package evm

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ReadContract calls a view method and decodes its outputs. A method with a single output
// returns the value itself, with several outputs the values as []any, and with none nil.
func (c *Client) ReadContract(ctx context.Context, p ReadContractParams) (any, error) {
	input, err := p.ABI.Pack(p.Method, p.Args...)
	if err != nil {
		return nil, fmt.Errorf("read contract: pack %s: %w", p.Method, err)
	}

	to := p.Address
	out, err := c.onchain.CallContract(ctx, ethereum.CallMsg{
		From: c.address,
		To:   &to,
		Data: input,
	}, p.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("read contract: call %s on %s: %w", p.Method, p.Address.Hex(), withRevertReason(err))
	}

	values, err := p.ABI.Unpack(p.Method, out)
	if err != nil {
		return nil, fmt.Errorf("read contract: unpack %s: %w", p.Method, err)
	}

	switch len(values) {
	case 0:
		return nil, nil
	case 1:
		return values[0], nil
	default:
		return values, nil
	}
}

// withRevertReason appends the decoded revert reason to a call error when the node returned
// revert data.
func withRevertReason(err error) error {
	data, derr := getJSONErrorData(err)
	if derr != nil || data == "" {
		return err
	}

	raw, derr := hexutil.Decode(data)
	if derr != nil {
		return fmt.Errorf("%w: %s", err, data)
	}

	reason, derr := abi.UnpackRevert(raw)
	if derr != nil {
		return fmt.Errorf("%w: %s", err, data)
	}

	return fmt.Errorf("%w: %s", err, reason)
}

// getJSONErrorData extracts the data of a JSON-RPC error.
func getJSONErrorData(err error) (string, error) {
	if err == nil {
		return "", errors.New("cannot parse nil error")
	}

	// Matches the private JSON error type of go-ethereum's rpc package.
	type jsonError interface {
		Error() string
		ErrorCode() int
		ErrorData() any
	}

	var jerr jsonError
	if !errors.As(err, &jerr) {
		return "", fmt.Errorf("error must be of type jsonError: %w", err)
	}

	if jerr.ErrorData() == nil {
		return "", nil
	}

	return fmt.Sprintf("%s", jerr.ErrorData()), nil
}
