// Package network resolves the blockchain network a wallet provider operates against and the
// chain metadata (RPC endpoints, native currency, chain selector) needed to talk to it.
package network

import (
	"errors"
	"fmt"
	"strconv"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// DefaultNetworkID is used when neither a network id nor a chain id is requested.
const DefaultNetworkID = "base-sepolia"

// ProtocolFamilyEVM is the protocol family of every network known to this package.
const ProtocolFamilyEVM = chainsel.FamilyEVM

// ErrUnknownNetwork is returned when a network id or chain id is not in the registry.
var ErrUnknownNetwork = errors.New("unknown network")

// Network describes the network a wallet is bound to. It is resolved once when a provider is
// configured and never changes afterwards.
type Network struct {
	ProtocolFamily string `json:"protocolFamily" yaml:"protocol_family"`
	ChainID        string `json:"chainId" yaml:"chain_id"`
	NetworkID      string `json:"networkId" yaml:"network_id"`
}

// String returns "<network id> (<chain id>)".
func (n Network) String() string {
	return fmt.Sprintf("%s (%s)", n.NetworkID, n.ChainID)
}

// EVMChainID returns the chain id as an integer.
func (n Network) EVMChainID() (uint64, error) {
	id, err := strconv.ParseUint(n.ChainID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chain id %q: %w", n.ChainID, err)
	}

	return id, nil
}

// Resolve resolves a Network from the default registry. See [Registry.Resolve].
func Resolve(networkID, chainID string) (Network, error) {
	return defaultRegistry.Resolve(networkID, chainID)
}

// ChainFor returns the chain metadata of n from the default registry.
func ChainFor(n Network) (Chain, error) {
	return defaultRegistry.Chain(n)
}
