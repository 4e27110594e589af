package network

import (
	chainsel "github.com/smartcontractkit/chain-selectors"
)

// Chain holds everything a chain client needs to connect to a network.
type Chain struct {
	// ID is the EVM chain id.
	ID uint64
	// Selector is the chain selector from chain-selectors, or 0 when the chain is not listed.
	Selector uint64
	// Name is the canonical chain-selectors name, or the network id when the chain is not listed.
	Name           string
	RPCs           []RPC
	NativeCurrency NativeCurrency
}

// NativeCurrency describes the currency balances and transfers are denominated in.
type NativeCurrency struct {
	Name     string `yaml:"name" toml:"name"`
	Symbol   string `yaml:"symbol" toml:"symbol"`
	Decimals int32  `yaml:"decimals" toml:"decimals"`
}

// URL scheme preferences for an RPC.
const (
	URLSchemeHTTP = "http"
	URLSchemeWS   = "ws"
)

// RPC represents a single RPC endpoint of a chain.
type RPC struct {
	RPCName            string `yaml:"rpc_name" toml:"rpc_name"`
	PreferredURLScheme string `yaml:"preferred_url_scheme" toml:"preferred_url_scheme"`
	HTTPURL            string `yaml:"http_url" toml:"http_url"`
	WSURL              string `yaml:"ws_url" toml:"ws_url"`
}

// PreferredEndpoint returns the endpoint matching the preferred URL scheme. By default, it
// returns the HTTP URL.
func (r RPC) PreferredEndpoint() string {
	if r.PreferredURLScheme == URLSchemeWS {
		return r.WSURL
	}

	return r.HTTPURL
}

var ether = NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18}

// lookupSelector fills the selector and canonical name from chain-selectors.
func lookupSelector(id uint64, fallbackName string) (uint64, string) {
	details, ok := chainsel.ChainByEvmChainID(id)
	if !ok {
		return 0, fallbackName
	}

	return details.Selector, details.Name
}
