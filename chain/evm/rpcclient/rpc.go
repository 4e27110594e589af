package rpcclient

import (
	"errors"
	"fmt"
	"strings"
)

// URLSchemePreference selects which endpoint of an RPC is dialed.
type URLSchemePreference int

const (
	URLSchemePreferenceNone URLSchemePreference = iota
	URLSchemePreferenceWS
	URLSchemePreferenceHTTP
)

// URLSchemePreferenceFromString converts a string to a URLSchemePreference. An empty string
// means no preference.
func URLSchemePreferenceFromString(s string) (URLSchemePreference, error) {
	switch strings.ToLower(s) {
	case "":
		return URLSchemePreferenceNone, nil
	case "ws", "wss":
		return URLSchemePreferenceWS, nil
	case "http", "https":
		return URLSchemePreferenceHTTP, nil
	default:
		return URLSchemePreferenceNone, fmt.Errorf("invalid URL scheme preference: %s", s)
	}
}

func (p URLSchemePreference) String() string {
	switch p {
	case URLSchemePreferenceWS:
		return "ws"
	case URLSchemePreferenceHTTP:
		return "http"
	default:
		return "none"
	}
}

// RPC is a single RPC endpoint of a chain.
type RPC struct {
	Name               string
	WSURL              string
	HTTPURL            string
	PreferredURLScheme URLSchemePreference
}

// ToEndpoint returns the URL to dial. Without a preference the HTTP URL is used when set.
func (r RPC) ToEndpoint() (string, error) {
	switch r.PreferredURLScheme {
	case URLSchemePreferenceWS:
		if r.WSURL == "" {
			return "", fmt.Errorf("RPC %q prefers ws but has no ws url", r.Name)
		}

		return r.WSURL, nil
	case URLSchemePreferenceHTTP:
		if r.HTTPURL == "" {
			return "", fmt.Errorf("RPC %q prefers http but has no http url", r.Name)
		}

		return r.HTTPURL, nil
	case URLSchemePreferenceNone:
		if r.HTTPURL != "" {
			return r.HTTPURL, nil
		}
		if r.WSURL != "" {
			return r.WSURL, nil
		}
	}

	return "", errors.New("no endpoint configured for RPC " + r.Name)
}

// RPCConfig is the set of RPCs of one chain. ChainName is used in logs; when empty it is looked
// up from the chain selector. A non zero ChainID makes the health check reject endpoints serving
// another chain.
type RPCConfig struct {
	ChainSelector uint64
	ChainName     string
	ChainID       uint64
	RPCs          []RPC
}
