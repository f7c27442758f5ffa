package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/foldervault/internal/client/cli"
	"github.com/dmitrijs2005/foldervault/internal/client/config"
	"github.com/dmitrijs2005/foldervault/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "foldervault",
		Short:         "Interactive client for an encrypted folder vault",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := logging.NewText(os.Stderr, cfg.LogLevel)

			app, err := cli.NewApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Run(ctx)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (yaml, json or toml)")
	config.RegisterFlags(cmd.Flags())
	return cmd
}
