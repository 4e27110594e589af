package wallet

// ExportRecord holds what is needed to reconfigure a provider for the same wallet and network.
//
// WARNING: This data type contains sensitive fields and should not be logged.
type ExportRecord struct {
	WalletID string `json:"walletId"`
	// AuthorizationPrivateKey is nil when none was configured, and is then encoded as null.
	AuthorizationPrivateKey *string `json:"authorizationPrivateKey"`
	ChainID                 string  `json:"chainId"`
	NetworkID               string  `json:"networkId"`
}

// Config returns a configuration that binds to the exported wallet. Credentials are not part of
// the export and must be filled in by the caller.
func (r ExportRecord) Config() Config {
	cfg := Config{
		WalletID:  r.WalletID,
		ChainID:   r.ChainID,
		NetworkID: r.NetworkID,
	}
	if r.AuthorizationPrivateKey != nil {
		cfg.AuthorizationPrivateKey = *r.AuthorizationPrivateKey
	}

	return cfg
}
