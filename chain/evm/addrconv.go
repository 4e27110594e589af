package evm

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ParseAddress parses a hex EVM address, with or without the 0x prefix.
func ParseAddress(address string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("invalid EVM address format: %s", address)
	}

	return common.HexToAddress(address), nil
}
