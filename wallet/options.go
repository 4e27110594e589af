package wallet

import (
	"github.com/smartcontractkit/wallet-providers/custody"
	"github.com/smartcontractkit/wallet-providers/network"
	"github.com/smartcontractkit/wallet-providers/pkg/logger"
)

type options struct {
	custody      custody.Client
	chainFactory ChainClientFactory
	registry     *network.Registry
	lggr         logger.Logger
}

// Option configures [New].
type Option func(*options)

// WithCustodyClient uses client instead of building one from the configuration.
func WithCustodyClient(client custody.Client) Option {
	return func(o *options) {
		o.custody = client
	}
}

// WithChainClientFactory overrides how the chain client is bound. The default connects to the
// network's RPC endpoints, see [NewRPCChainClientFactory].
func WithChainClientFactory(f ChainClientFactory) Option {
	return func(o *options) {
		o.chainFactory = f
	}
}

// WithNetworkRegistry resolves networks from r instead of the built in networks.
func WithNetworkRegistry(r *network.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithLogger sets the logger.
func WithLogger(lggr logger.Logger) Option {
	return func(o *options) {
		o.lggr = lggr
	}
}
