package network

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Manifest is the file representation of network overrides.
type Manifest struct {
	Networks []NetworkSpec `yaml:"networks" toml:"networks"`
}

// NetworkSpec is a single network in a Manifest. Specs for known network ids replace their RPCs
// and, when set, their native currency. Specs for unknown network ids register a new network.
type NetworkSpec struct {
	NetworkID      string          `yaml:"network_id" toml:"network_id"`
	ChainID        uint64          `yaml:"chain_id" toml:"chain_id"`
	RPCs           []RPC           `yaml:"rpcs" toml:"rpcs"`
	NativeCurrency *NativeCurrency `yaml:"native_currency,omitempty" toml:"native_currency,omitempty"`
}

// Validate checks that the spec can be registered.
func (s NetworkSpec) Validate() error {
	if s.NetworkID == "" {
		return errors.New("network id is required")
	}

	if len(s.RPCs) == 0 {
		return errors.New("at least one RPC is required")
	}

	for i, rpc := range s.RPCs {
		if rpc.PreferredEndpoint() == "" {
			return fmt.Errorf("rpc %d (%s): no endpoint for preferred URL scheme %q",
				i, rpc.RPCName, rpc.PreferredURLScheme,
			)
		}
	}

	return nil
}

// LoadFile returns a new Registry with the default networks overridden by the manifest at
// path. The format is chosen by extension: .toml for TOML, anything else is read as YAML.
func LoadFile(path string) (*Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read networks file %s: %w", path, err)
	}

	var m Manifest
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(b, &m)
	} else {
		err = yaml.Unmarshal(b, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse networks file %s: %w", path, err)
	}

	r := NewRegistry()
	if err := r.Apply(m); err != nil {
		return nil, fmt.Errorf("invalid networks file %s: %w", path, err)
	}

	return r, nil
}

// Apply merges the manifest into the registry. A chain id may belong to one network id only.
// When the manifest is rejected the registry is left unchanged.
func (r *Registry) Apply(m Manifest) error {
	next := r.clone()
	for _, s := range m.Networks {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("network %q: %w", s.NetworkID, err)
		}

		e, known := next.byNetworkID[s.NetworkID]
		if !known {
			if s.ChainID == 0 {
				return fmt.Errorf("network %q: chain id is required for a new network", s.NetworkID)
			}
			e = entry{networkID: s.NetworkID, nativeCurrency: ether}
		}
		if s.ChainID != 0 {
			if owner, taken := next.byChainID[s.ChainID]; taken && owner != s.NetworkID {
				return fmt.Errorf("network %q: chain id %d is already registered to network %q",
					s.NetworkID, s.ChainID, owner,
				)
			}
			e.chainID = s.ChainID
		}
		e.rpcs = s.RPCs
		if s.NativeCurrency != nil {
			e.nativeCurrency = *s.NativeCurrency
		}

		next.put(e)
	}

	*r = *next

	return nil
}
