package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	clientconfig "github.com/dmitrijs2005/foldervault/internal/client/config"
	"github.com/dmitrijs2005/foldervault/internal/logging"
	"github.com/dmitrijs2005/foldervault/internal/server"
	"github.com/dmitrijs2005/foldervault/internal/server/config"
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

	root := &cobra.Command{
		Use:           "foldervaultd",
		Short:         "Folder sync server for foldervault clients",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml, json or toml)")
	config.RegisterFlags(root.PersistentFlags())

	newApp := func(ctx context.Context, cmd *cobra.Command, logOut io.Writer) (*server.App, error) {
		cfg, err := config.Load(configFile, cmd.Flags())
		if err != nil {
			return nil, err
		}
		logger := logging.NewJSON(logOut, cfg.LogLevel)
		return server.NewApp(ctx, cfg, logger)
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gRPC folder API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
			defer stop()

			app, err := newApp(ctx, cmd, os.Stdout)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Run(ctx)
		},
	}

	var userID string
	token := &cobra.Command{
		Use:   "token",
		Short: "Issue an access/refresh token pair for a user",
		Long: "Issue an access/refresh token pair for a user. The output is a valid\n" +
			"client config file. Refresh tokens only survive a restart with a database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newApp(ctx, cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			pair, err := app.IssueTokens(ctx, userID)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]string{
				clientconfig.KeyAccessToken:  pair.AccessToken,
				clientconfig.KeyRefreshToken: pair.RefreshToken,
			})
		},
	}
	token.Flags().StringVar(&userID, "user", "", "user id the tokens are issued for")
	_ = token.MarkFlagRequired("user")

	root.AddCommand(serve, token)
	return root
}
