package wallet

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// defaultDecimals is used for chains whose native currency does not state its decimals.
const defaultDecimals int32 = 18

// maxUnitBits is the width of an EVM word, the largest value a transaction can carry.
const maxUnitBits = 256

// ParseUnits converts a decimal amount of a currency with the given decimals into its smallest
// unit, e.g. "1.5" ether into 1500000000000000000 wei.
// Exponent notation is rejected and the result must fit in 256 bits.
func ParseUnits(amount string, decimals int32) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if strings.ContainsAny(amount, "eE") {
		return nil, fmt.Errorf("invalid amount %q: exponent notation is not supported", amount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("amount %q must not be negative", amount)
	}

	units := d.Shift(decimals)
	if !units.Equal(units.Truncate(0)) {
		return nil, fmt.Errorf("amount %q has more than %d decimals", amount, decimals)
	}

	value := units.BigInt()
	if value.BitLen() > maxUnitBits {
		return nil, fmt.Errorf("amount %q does not fit in %d bits", amount, maxUnitBits)
	}

	return value, nil
}

// FormatUnits converts an amount in the smallest unit of a currency with the given decimals into
// a decimal string, e.g. 1500000000000000000 wei into "1.5".
func FormatUnits(amount *big.Int, decimals int32) string {
	if amount == nil {
		return "0"
	}

	return decimal.NewFromBigInt(amount, -decimals).String()
}
