// Package cli wires the cobra command tree of the gpeople CLI.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gpeople/internal/adapters/driven/auth"
	configfile "github.com/custodia-labs/gpeople/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gpeople/internal/adapters/driven/peopleapi"
	storagefile "github.com/custodia-labs/gpeople/internal/adapters/driven/storage/file"
	storagesqlite "github.com/custodia-labs/gpeople/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/gpeople/internal/core/ports/driven"
	"github.com/custodia-labs/gpeople/internal/core/services"
	"github.com/custodia-labs/gpeople/internal/logger"
)

var (
	flagVerbose bool
	flagConfig  string
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gpeople",
		Short: "Field-masked Google Contacts client",
		Long: `gpeople reads and edits Google Contacts through field-masked
partial representations: every fetch and write is scoped to an explicit
set of person fields, so unrequested data is never clobbered.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(flagVerbose)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default ~/.gpeople/config.toml)")

	root.AddCommand(newListCmd())
	root.AddCommand(newCreateCmd())
	root.AddCommand(newGroupCmd())

	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// closer is implemented by stores that hold open resources.
type closer interface {
	Close() error
}

// buildClient assembles the client from configuration: credentials
// store, authorizer, People API transport, rate limits. The returned
// cleanup func closes the store when needed.
func buildClient(ctx context.Context) (*services.Client, func(), error) {
	cfg, err := configfile.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	var store driven.CredentialsStore
	switch cfg.Credentials.Backend {
	case configfile.BackendSQLite:
		store, err = storagesqlite.NewCredentialsStore(cfg.Credentials.Path)
	default:
		store, err = storagefile.NewCredentialsStore(cfg.Credentials.Path)
	}
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if c, ok := store.(closer); ok {
			_ = c.Close()
		}
	}

	authorizer, err := auth.New(auth.Config{
		ClientID:     cfg.OAuth.ClientID,
		ClientSecret: cfg.OAuth.ClientSecret,
		Port:         cfg.OAuth.Port,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("oauth configuration: %w", err)
	}

	transport, err := peopleapi.New(ctx, auth.TokenSource(ctx, store, authorizer))
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	opts := services.Options{
		Transport:       transport,
		Store:           store,
		Auth:            authorizer,
		MaxPageAttempts: cfg.Paging.MaxAttempts,
	}
	if cfg.RateLimit.WindowSeconds > 0 {
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		if cfg.RateLimit.ReadCalls > 0 {
			opts.ReadLimit = services.RateLimit{Calls: cfg.RateLimit.ReadCalls, Window: window}
		}
		if cfg.RateLimit.WriteCalls > 0 {
			opts.WriteLimit = services.RateLimit{Calls: cfg.RateLimit.WriteCalls, Window: window}
		}
	}

	client, err := services.New(ctx, opts)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return client, cleanup, nil
}
