package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/chriskampolis/tably/config"
	"github.com/chriskampolis/tably/internal/api"
	"github.com/chriskampolis/tably/internal/session"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tably",
	Short:         "tably — terminal client for the restaurant ordering backend",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	// Auth
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	// Ordering
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(completedOrdersCmd)

	// Manager CRUD
	rootCmd.AddCommand(menuItemsCmd)
	rootCmd.AddCommand(usersCmd)
}

var (
	bootOnce sync.Once
	store    *session.Store
	client   *api.Client
)

// boot wires the session store and API client together: the store feeds the
// client its bearer token, and the client performs the store's token
// refresh exchange.
func boot() (*session.Store, *api.Client) {
	bootOnce.Do(func() {
		_ = config.Load()
		store = session.New(config.CredentialsDir(), func(ctx context.Context, refreshToken string) (string, error) {
			return client.RefreshToken(ctx, refreshToken)
		})
		client = api.New(config.APIBaseURL(), store)
	})
	return store, client
}
