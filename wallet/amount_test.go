package wallet

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxUint256 = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

func Test_ParseUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   string
		decimals int32
		want     string
		wantErr  string
	}{
		{name: "whole ether", amount: "1", decimals: 18, want: "1000000000000000000"},
		{name: "fraction", amount: "0.000000000000000001", decimals: 18, want: "1"},
		{name: "surrounding spaces", amount: " 2.5 ", decimals: 18, want: "2500000000000000000"},
		{name: "zero", amount: "0", decimals: 18, want: "0"},
		{name: "six decimals", amount: "1.25", decimals: 6, want: "1250000"},
		{name: "empty", amount: "", decimals: 18, wantErr: "invalid amount"},
		{name: "not a number", amount: "1,5", decimals: 18, wantErr: "invalid amount"},
		{name: "negative", amount: "-0.1", decimals: 18, wantErr: "must not be negative"},
		{name: "exponent notation", amount: "1e80", decimals: 18, wantErr: "exponent notation"},
		{name: "huge exponent", amount: "1E2000000000", decimals: 18, wantErr: "exponent notation"},
		{name: "max uint256 wei", amount: maxUint256, decimals: 0, want: maxUint256},
		{name: "above uint256", amount: "115792089237316195423570985008687907853269984665640564039458", decimals: 18,
			wantErr: "does not fit in 256 bits"},
		{name: "too precise", amount: "1.0000001", decimals: 6, wantErr: "more than 6 decimals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseUnits(tt.amount, tt.decimals)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func Test_FormatUnits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.5", FormatUnits(big.NewInt(1_500_000_000_000_000_000), 18))
	assert.Equal(t, "0.000000000000000001", FormatUnits(big.NewInt(1), 18))
	assert.Equal(t, "0", FormatUnits(nil, 18))
}
