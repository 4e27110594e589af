// Package commands provides the walletctl CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/wallet-providers/pkg/logger"
)

// DefaultConfigFile is read when --config is not set. A missing file falls back to the
// environment.
const DefaultConfigFile = "walletctl.yml"

var (
	rootShort = "Custodial EVM wallet operations"

	rootLong = longDesc(`
		walletctl operates a wallet held by a custody service (Privy or AWS KMS) on an EVM network.

		The wallet, network and credentials are read from the config file and the environment,
		e.g. PRIVY_APP_ID, PRIVY_APP_SECRET, PRIVY_WALLET_ID and NETWORK_ID. Without a wallet id a
		new wallet is created; use the export command to keep its id.
	`)
)

// Config holds the configuration for the walletctl commands.
type Config struct {
	// Logger is the logger to use for diagnostics. Required.
	Logger logger.Logger

	// Deps holds optional dependencies that can be overridden.
	// If fields are nil, production defaults are used.
	Deps Deps
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	var missing []string

	if c.Logger == nil {
		missing = append(missing, "Logger")
	}

	if len(missing) > 0 {
		return errors.New("commands.Config: missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

// NewCommand creates the walletctl root command with all subcommands.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.deps()

	cmd := &cobra.Command{
		Use:           "walletctl",
		Short:         rootShort,
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringP("config", "c", DefaultConfigFile, "Config file path")

	cmd.AddCommand(newAddressCmd(cfg))
	cmd.AddCommand(newNetworkCmd(cfg))
	cmd.AddCommand(newBalanceCmd(cfg))
	cmd.AddCommand(newSignMessageCmd(cfg))
	cmd.AddCommand(newSendCmd(cfg))
	cmd.AddCommand(newTransferCmd(cfg))
	cmd.AddCommand(newReceiptCmd(cfg))
	cmd.AddCommand(newReadContractCmd(cfg))
	cmd.AddCommand(newExportCmd(cfg))

	return cmd, nil
}

// loadProvider loads the config named by --config and configures the provider.
func loadProvider(cmd *cobra.Command, cfg Config) (Provider, error) {
	deps := cfg.deps()

	path := DefaultConfigFile
	if f := cmd.Flag("config"); f != nil {
		path = f.Value.String()
	}

	c, err := deps.ConfigLoader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	p, err := deps.ProviderLoader(cmd.Context(), c, cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to configure wallet: %w", err)
	}

	return p, nil
}

// printJSON writes v as indented JSON to the command output.
func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))

	return err
}
