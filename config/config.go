// Package config loads the wallet provider configuration from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/spf13/viper"

	"github.com/smartcontractkit/wallet-providers/chain/evm"
	"github.com/smartcontractkit/wallet-providers/network"
	"github.com/smartcontractkit/wallet-providers/pkg/logger"
	"github.com/smartcontractkit/wallet-providers/wallet"
)

// PrivyConfig is the configuration for the Privy custody service.
//
// WARNING: This data type contains sensitive fields and should not be logged or set in file
// configuration.
type PrivyConfig struct {
	AppID                   string `mapstructure:"app_id" yaml:"app_id"`                                       // The Privy application id
	APIKey                  string `mapstructure:"api_key" yaml:"api_key"`                                     // Secret: Used as the app secret when none is set
	AppSecret               string `mapstructure:"app_secret" yaml:"app_secret"`                               // Secret: The Privy application secret
	WalletID                string `mapstructure:"wallet_id" yaml:"wallet_id"`                                 // The wallet to bind to. A new wallet is created when empty.
	AuthorizationKeyID      string `mapstructure:"authorization_key_id" yaml:"authorization_key_id"`           // The authorization key owning new wallets
	AuthorizationPrivateKey string `mapstructure:"authorization_private_key" yaml:"authorization_private_key"` // Secret: Signs requests for wallets owned by an authorization key
}

// KMSConfig is the configuration for the AWS KMS custody service.
type KMSConfig struct {
	KeyRegion  string `mapstructure:"key_region" yaml:"key_region"`   // AWS KMS Key Region (e.g. us-west-1)
	AWSProfile string `mapstructure:"aws_profile" yaml:"aws_profile"` // The AWS shared config profile
}

// NetworkConfig selects the network.
type NetworkConfig struct {
	NetworkID    string `mapstructure:"network_id" yaml:"network_id"`       // The network id, e.g. base-sepolia
	ChainID      string `mapstructure:"chain_id" yaml:"chain_id"`           // The EVM chain id. Takes precedence over the network id.
	NetworksFile string `mapstructure:"networks_file" yaml:"networks_file"` // A YAML or TOML file overriding the known networks
}

// ChainConfig tunes the chain client.
type ChainConfig struct {
	PollInterval   time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`     // Interval between receipt queries
	ReceiptTimeout time.Duration `mapstructure:"receipt_timeout" yaml:"receipt_timeout"` // How long to wait for a receipt
}

// LogConfig configures the logger.
type LogConfig struct {
	Level    string `mapstructure:"level" yaml:"level"`       // The minimum log level, e.g. debug
	Encoding string `mapstructure:"encoding" yaml:"encoding"` // json or console
}

// Config wraps the entire configuration of a wallet provider.
type Config struct {
	Custody string        `mapstructure:"custody" yaml:"custody"` // The custody service: privy (default) or kms
	Privy   PrivyConfig   `mapstructure:"privy" yaml:"privy"`
	KMS     KMSConfig     `mapstructure:"kms" yaml:"kms"`
	Network NetworkConfig `mapstructure:"network" yaml:"network"`
	Chain   ChainConfig   `mapstructure:"chain" yaml:"chain"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// Load loads the config from the file path, falling back to env vars if the file does not exist.
// If the file exists, any env vars that are set will override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filePath)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadEnv loads the config from the environment variables.
func LoadEnv() (*Config, error) {
	v := viper.New()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadFile loads the config from a file.
func LoadFile(filePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// Validate checks the parts of the config that the wallet package does not.
func (c *Config) Validate() error {
	var errs []error
	if c.Log.Level != "" {
		if _, err := (logger.Config{Level: c.Log.Level}).New(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Chain.PollInterval < 0 {
		errs = append(errs, fmt.Errorf("poll interval must not be negative: %s", c.Chain.PollInterval))
	}
	if c.Chain.ReceiptTimeout < 0 {
		errs = append(errs, fmt.Errorf("receipt timeout must not be negative: %s", c.Chain.ReceiptTimeout))
	}

	return errors.Join(errs...)
}

// WalletConfig returns the provider configuration.
func (c *Config) WalletConfig() wallet.Config {
	return wallet.Config{
		AppID:                   c.Privy.AppID,
		APIKey:                  c.Privy.APIKey,
		AppSecret:               c.Privy.AppSecret,
		WalletID:                c.Privy.WalletID,
		NetworkID:               c.Network.NetworkID,
		ChainID:                 c.Network.ChainID,
		AuthorizationKeyID:      c.Privy.AuthorizationKeyID,
		AuthorizationPrivateKey: c.Privy.AuthorizationPrivateKey,
		Custody:                 c.Custody,
		KMSRegion:               c.KMS.KeyRegion,
		AWSProfile:              c.KMS.AWSProfile,
	}
}

// NetworkRegistry returns the registry of known networks, with the networks file applied when
// one is configured.
func (c *Config) NetworkRegistry() (*network.Registry, error) {
	if c.Network.NetworksFile == "" {
		return network.DefaultRegistry(), nil
	}

	return network.LoadFile(c.Network.NetworksFile)
}

// ChainOptions returns the chain client options of the config. Unset durations keep the
// chain client defaults.
func (c *Config) ChainOptions() []evm.Option {
	var opts []evm.Option
	if c.Chain.PollInterval > 0 {
		opts = append(opts, evm.WithPollInterval(c.Chain.PollInterval))
	}
	if c.Chain.ReceiptTimeout > 0 {
		opts = append(opts, evm.WithReceiptTimeout(c.Chain.ReceiptTimeout))
	}

	return opts
}

// Logger builds the logger of the config.
func (c *Config) Logger() (logger.Logger, error) {
	return logger.Config{Level: c.Log.Level, Encoding: c.Log.Encoding}.New()
}

var (
	// envBindings maps config keys to the environment variables that can provide their value.
	// The first set variable in the list wins.
	envBindings = map[string][]string{
		"custody":                         {"CUSTODY_PROVIDER"},
		"privy.app_id":                    {"PRIVY_APP_ID"},
		"privy.api_key":                   {"PRIVY_API_KEY"},
		"privy.app_secret":                {"PRIVY_APP_SECRET"},
		"privy.wallet_id":                 {"PRIVY_WALLET_ID"},
		"privy.authorization_key_id":      {"PRIVY_AUTHORIZATION_KEY_ID"},
		"privy.authorization_private_key": {"PRIVY_AUTHORIZATION_PRIVATE_KEY"},
		"kms.key_region":                  {"KMS_KEY_REGION", "AWS_REGION"},
		"kms.aws_profile":                 {"AWS_PROFILE"},
		"network.network_id":              {"NETWORK_ID"},
		"network.chain_id":                {"CHAIN_ID"},
		"network.networks_file":           {"NETWORKS_FILE"},
		"chain.poll_interval":             {"RECEIPT_POLL_INTERVAL"},
		"chain.receipt_timeout":           {"RECEIPT_TIMEOUT"},
		"log.level":                       {"LOG_LEVEL"},
		"log.encoding":                    {"LOG_ENCODING"},
	}
)

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
