// Package main is walletctl, a CLI for custodial EVM wallets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/smartcontractkit/wallet-providers/cmd/walletctl/commands"
	"github.com/smartcontractkit/wallet-providers/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lggr, err := logger.Config{Level: os.Getenv("LOG_LEVEL"), Encoding: "console"}.New()
	if err != nil {
		return err
	}
	defer func() { _ = lggr.Sync() }()

	cmd, err := commands.NewCommand(commands.Config{Logger: lggr})
	if err != nil {
		return err
	}

	return cmd.ExecuteContext(ctx)
}
