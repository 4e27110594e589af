package privy

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// Wallet RPC methods.
const (
	methodPersonalSign    = "personal_sign"
	methodSignTypedData   = "eth_signTypedData_v4"
	methodSignTransaction = "eth_signTransaction"
)

type rpcRequest struct {
	Method string `json:"method"`
	Params any    `json:"params"`
}

type rpcResponse struct {
	Method string `json:"method"`
	Data   struct {
		Signature         string `json:"signature"`
		SignedTransaction string `json:"signed_transaction"`
		Encoding          string `json:"encoding"`
	} `json:"data"`
}

type personalSignParams struct {
	Message  string `json:"message"`
	Encoding string `json:"encoding"`
}

// typedDataParams mirrors [apitypes.TypedData] with the field names of the Privy API.
type typedDataParams struct {
	TypedData struct {
		Types       apitypes.Types `json:"types"`
		PrimaryType string         `json:"primary_type"`
		Domain      map[string]any `json:"domain"`
		Message     map[string]any `json:"message"`
	} `json:"typed_data"`
}

type transactionParams struct {
	Transaction rpcTransaction `json:"transaction"`
}

type rpcTransaction struct {
	To                   string         `json:"to,omitempty"`
	Value                *hexutil.Big   `json:"value,omitempty"`
	ChainID              *hexutil.Big   `json:"chain_id"`
	Data                 hexutil.Bytes  `json:"data,omitempty"`
	Nonce                hexutil.Uint64 `json:"nonce"`
	GasLimit             hexutil.Uint64 `json:"gas_limit"`
	MaxFeePerGas         *hexutil.Big   `json:"max_fee_per_gas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big   `json:"max_priority_fee_per_gas,omitempty"`
	GasPrice             *hexutil.Big   `json:"gas_price,omitempty"`
	Type                 hexutil.Uint64 `json:"type"`
}

// SignMessage signs message with personal_sign. Non UTF-8 messages are sent hex encoded.
func (c *Client) SignMessage(ctx context.Context, walletID string, message []byte) ([]byte, error) {
	params := personalSignParams{Message: string(message), Encoding: "utf-8"}
	if !utf8.Valid(message) {
		params = personalSignParams{Message: hexutil.Encode(message), Encoding: "hex"}
	}

	resp, err := c.rpc(ctx, walletID, methodPersonalSign, params)
	if err != nil {
		return nil, err
	}

	return decodeSignature(resp.Data.Signature)
}

// SignTypedData signs EIP-712 typed data with eth_signTypedData_v4.
func (c *Client) SignTypedData(ctx context.Context, walletID string, data apitypes.TypedData) ([]byte, error) {
	var params typedDataParams
	params.TypedData.Types = data.Types
	params.TypedData.PrimaryType = data.PrimaryType
	params.TypedData.Domain = data.Domain.Map()
	params.TypedData.Message = data.Message

	resp, err := c.rpc(ctx, walletID, methodSignTypedData, params)
	if err != nil {
		return nil, err
	}

	return decodeSignature(resp.Data.Signature)
}

// SignTransaction signs tx with eth_signTransaction and decodes the returned RLP encoded
// transaction.
func (c *Client) SignTransaction(
	ctx context.Context, walletID string, tx *types.Transaction, chainID *big.Int,
) (*types.Transaction, error) {
	if chainID == nil {
		return nil, errors.New("chainID is required")
	}

	params := transactionParams{Transaction: toRPCTransaction(tx, chainID)}

	resp, err := c.rpc(ctx, walletID, methodSignTransaction, params)
	if err != nil {
		return nil, err
	}

	raw, err := hexutil.Decode(resp.Data.SignedTransaction)
	if err != nil {
		return nil, fmt.Errorf("invalid signed transaction %q: %w", resp.Data.SignedTransaction, err)
	}

	signed := new(types.Transaction)
	if err := signed.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("failed to decode signed transaction: %w", err)
	}

	return signed, nil
}

func (c *Client) rpc(ctx context.Context, walletID, method string, params any) (*rpcResponse, error) {
	if walletID == "" {
		return nil, errors.New("wallet id is required")
	}

	var resp rpcResponse
	err := c.do(ctx, http.MethodPost, []string{"v1", "wallets", walletID, "rpc"}, rpcRequest{
		Method: method,
		Params: params,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", method, err)
	}

	return &resp, nil
}

func toRPCTransaction(tx *types.Transaction, chainID *big.Int) rpcTransaction {
	rt := rpcTransaction{
		Value:    (*hexutil.Big)(tx.Value()),
		ChainID:  (*hexutil.Big)(chainID),
		Data:     tx.Data(),
		Nonce:    hexutil.Uint64(tx.Nonce()),
		GasLimit: hexutil.Uint64(tx.Gas()),
		Type:     hexutil.Uint64(tx.Type()),
	}
	if to := tx.To(); to != nil {
		rt.To = to.Hex()
	}

	if tx.Type() == types.LegacyTxType || tx.Type() == types.AccessListTxType {
		rt.GasPrice = (*hexutil.Big)(tx.GasPrice())
	} else {
		rt.MaxFeePerGas = (*hexutil.Big)(tx.GasFeeCap())
		rt.MaxPriorityFeePerGas = (*hexutil.Big)(tx.GasTipCap())
	}

	return rt
}

func decodeSignature(s string) ([]byte, error) {
	sig, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid signature %q: %w", s, err)
	}
	if len(sig) != 65 {
		return nil, fmt.Errorf("invalid signature length %d", len(sig))
	}

	return sig, nil
}
