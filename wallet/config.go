package wallet

import (
	"errors"

	"github.com/smartcontractkit/wallet-providers/custody"
)

// Custody service names accepted in [Config.Custody].
const (
	CustodyPrivy = "privy"
	CustodyKMS   = "kms"
)

// Config configures a [Provider].
//
// WARNING: This data type contains sensitive fields and should not be logged.
type Config struct {
	// AppID, APIKey and AppSecret are the custody service application credentials.
	AppID     string
	APIKey    string
	AppSecret string
	// WalletID selects an existing wallet. A new wallet is created when empty.
	WalletID string
	// NetworkID selects the network by name, e.g. "base-sepolia".
	NetworkID string
	// ChainID selects the network by decimal EVM chain id. It takes precedence over NetworkID.
	ChainID string
	// AuthorizationKeyID scopes a newly created wallet to an authorization key.
	AuthorizationKeyID string
	// AuthorizationPrivateKey signs requests for wallets owned by an authorization key.
	AuthorizationPrivateKey string

	// Custody selects the custody service used when no client is injected: "privy" (default)
	// or "kms".
	Custody string
	// KMSRegion and AWSProfile configure the "kms" custody service.
	KMSRegion  string
	AWSProfile string
}

// Validate checks the configuration without contacting any remote service.
func (c Config) Validate() error {
	if c.AuthorizationKeyID != "" && c.WalletID == "" && c.AuthorizationPrivateKey == "" {
		return errors.New(
			"authorization private key is required when creating a new wallet with an authorization key id",
		)
	}

	switch c.Custody {
	case "", CustodyPrivy, CustodyKMS:
	default:
		return errors.New("unknown custody service " + c.Custody)
	}

	return nil
}

// custodyName returns the configured custody service name.
func (c Config) custodyName() string {
	if c.Custody == "" {
		return CustodyPrivy
	}

	return c.Custody
}

// Credentials returns the custody service credentials of the configuration.
func (c Config) Credentials() custody.Credentials {
	return custody.Credentials{
		AppID:                   c.AppID,
		APIKey:                  c.APIKey,
		AppSecret:               c.AppSecret,
		AuthorizationPrivateKey: c.AuthorizationPrivateKey,
	}
}

// createRequest returns the request used to create a new wallet.
func (c Config) createRequest() custody.CreateRequest {
	var req custody.CreateRequest
	if c.AuthorizationKeyID != "" {
		req.AuthorizationKeyIDs = []string{c.AuthorizationKeyID}
	}

	return req
}
