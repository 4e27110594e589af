package network

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// entry is a registered network together with its connection metadata.
type entry struct {
	networkID      string
	chainID        uint64
	rpcs           []RPC
	nativeCurrency NativeCurrency
}

// Registry maps network ids to chain ids and connection metadata. A Registry is not safe for
// concurrent mutation; build it fully before sharing it.
type Registry struct {
	byNetworkID map[string]entry
	byChainID   map[uint64]string
}

func httpRPC(name, url string) []RPC {
	return []RPC{{RPCName: name, PreferredURLScheme: URLSchemeHTTP, HTTPURL: url}}
}

// defaultEntries is the static mapping between network ids and chain ids.
var defaultEntries = []entry{
	{"ethereum-mainnet", 1, httpRPC("llamarpc", "https://eth.llamarpc.com"), ether},
	{"ethereum-sepolia", 11155111, httpRPC("publicnode", "https://ethereum-sepolia-rpc.publicnode.com"), ether},
	{"base-mainnet", 8453, httpRPC("base", "https://mainnet.base.org"), ether},
	{"base-sepolia", 84532, httpRPC("base", "https://sepolia.base.org"), ether},
	{"arbitrum-mainnet", 42161, httpRPC("arbitrum", "https://arb1.arbitrum.io/rpc"), ether},
	{"arbitrum-sepolia", 421614, httpRPC("arbitrum", "https://sepolia-rollup.arbitrum.io/rpc"), ether},
	{"optimism-mainnet", 10, httpRPC("optimism", "https://mainnet.optimism.io"), ether},
	{"optimism-sepolia", 11155420, httpRPC("optimism", "https://sepolia.optimism.io"), ether},
	{"polygon-mainnet", 137, httpRPC("polygon", "https://polygon-rpc.com"),
		NativeCurrency{Name: "POL", Symbol: "POL", Decimals: 18}},
	{"polygon-amoy", 80002, httpRPC("polygon", "https://rpc-amoy.polygon.technology"),
		NativeCurrency{Name: "POL", Symbol: "POL", Decimals: 18}},
}

// defaultRegistry backs [Resolve] and [ChainFor] and is never changed.
var defaultRegistry = NewRegistry()

// NewRegistry returns a Registry pre-populated with the default networks.
func NewRegistry() *Registry {
	r := &Registry{
		byNetworkID: make(map[string]entry, len(defaultEntries)),
		byChainID:   make(map[uint64]string, len(defaultEntries)),
	}
	for _, e := range defaultEntries {
		r.put(e)
	}

	return r
}

// DefaultRegistry returns a new registry holding the default networks, the same networks
// [Resolve] and [ChainFor] read. Changes to it do not affect other registries.
func DefaultRegistry() *Registry {
	return NewRegistry()
}

// clone returns a copy of r that can be changed independently.
func (r *Registry) clone() *Registry {
	return &Registry{
		byNetworkID: maps.Clone(r.byNetworkID),
		byChainID:   maps.Clone(r.byChainID),
	}
}

func (r *Registry) put(e entry) {
	if prev, ok := r.byNetworkID[e.networkID]; ok && prev.chainID != e.chainID {
		delete(r.byChainID, prev.chainID)
	}
	r.byNetworkID[e.networkID] = e
	r.byChainID[e.chainID] = e.networkID
}

// NetworkIDs returns the registered network ids in sorted order.
func (r *Registry) NetworkIDs() []string {
	return slices.Sorted(maps.Keys(r.byNetworkID))
}

// Resolve resolves the Network for the requested network id or chain id. When chainID is set it
// takes precedence over networkID. When both are empty, [DefaultNetworkID] is used.
//
// Unknown identifiers return an error wrapping [ErrUnknownNetwork].
func (r *Registry) Resolve(networkID, chainID string) (Network, error) {
	if chainID != "" {
		id, err := strconv.ParseUint(chainID, 10, 64)
		if err != nil {
			return Network{}, fmt.Errorf("%w: invalid chain id %q", ErrUnknownNetwork, chainID)
		}

		nid, ok := r.byChainID[id]
		if !ok {
			return Network{}, fmt.Errorf("%w: chain id %s", ErrUnknownNetwork, chainID)
		}

		return r.byNetworkID[nid].network(), nil
	}

	if networkID == "" {
		networkID = DefaultNetworkID
	}

	e, ok := r.byNetworkID[networkID]
	if !ok {
		return Network{}, fmt.Errorf("%w: network id %q", ErrUnknownNetwork, networkID)
	}

	return e.network(), nil
}

// Chain returns the connection metadata of a resolved network.
func (r *Registry) Chain(n Network) (Chain, error) {
	e, ok := r.byNetworkID[n.NetworkID]
	if !ok {
		return Chain{}, fmt.Errorf("%w: network id %q", ErrUnknownNetwork, n.NetworkID)
	}

	selector, name := lookupSelector(e.chainID, e.networkID)

	return Chain{
		ID:             e.chainID,
		Selector:       selector,
		Name:           name,
		RPCs:           slices.Clone(e.rpcs),
		NativeCurrency: e.nativeCurrency,
	}, nil
}

func (e entry) network() Network {
	return Network{
		ProtocolFamily: ProtocolFamilyEVM,
		ChainID:        strconv.FormatUint(e.chainID, 10),
		NetworkID:      e.networkID,
	}
}
