// Package main provides the shopfront binary entry point.
// Shopfront is a demo storefront over a local snapshot document store:
// accounts, a product catalog, and a shopping cart.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jacentio/shopfront/shop"
	"github.com/jacentio/shopfront/store"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "shopfront"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the wired service shared by all subcommands.
type app struct {
	svc *shop.Service
}

func rootCmd() *cobra.Command {
	var (
		dataDir     string
		backendName string
		table       string
		logLevel    string
	)

	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Storefront demo over a snapshot document store",
		Long: `Shopfront is a single-user storefront demo: register an account, log in,
browse and manage a product catalog, and keep a shopping cart.

All state persists as whole-collection snapshots in the chosen backend
(a local data directory by default, or a DynamoDB table). A fixed
administrator account (` + shop.AdminEmail + `) and a starter catalog are
seeded on first run.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context(), dataDir, backendName, table, logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory for the file backend (env SHOPFRONT_DATA_DIR)")
	cmd.PersistentFlags().StringVar(&backendName, "backend", "file", "Storage backend (file, dynamo)")
	cmd.PersistentFlags().StringVar(&table, "table", "", "DynamoDB table for the dynamo backend (env SHOPFRONT_TABLE)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		registerCmd(a),
		loginCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		productsCmd(a),
		cartCmd(a),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// setup wires the backend, store, and service, and seeds the store. It runs
// once per invocation, before any subcommand.
func (a *app) setup(ctx context.Context, dataDir, backendName, table, logLevel string) error {
	// A .env file is optional.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(logLevel),
	}))
	slog.SetDefault(logger)

	if dataDir == "" {
		dataDir = os.Getenv("SHOPFRONT_DATA_DIR")
	}
	if table == "" {
		table = os.Getenv("SHOPFRONT_TABLE")
	}

	var backend store.Backend
	switch backendName {
	case "file":
		fileBackend, err := store.NewFileBackend(store.FileConfig{Dir: dataDir})
		if err != nil {
			return fmt.Errorf("open file backend: %w", err)
		}
		backend = fileBackend
	case "dynamo":
		awsConfig, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("load AWS config: %w", err)
		}
		backend = store.NewDynamoBackend(dynamodb.NewFromConfig(awsConfig), store.DynamoConfig{Table: table})
	default:
		return fmt.Errorf("unknown backend %q (want file or dynamo)", backendName)
	}

	a.svc = shop.New(store.New(backend),
		shop.WithLogger(logger),
		shop.WithNotifier(func(msg string) { fmt.Println(msg) }),
	)

	if err := a.svc.Seed(ctx); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// requireUser fails unless someone is logged in.
func (a *app) requireUser(ctx context.Context) (*shop.User, error) {
	user, err := a.svc.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("please login first")
	}
	return user, nil
}

// requireAdmin fails unless the logged-in user is an administrator.
func (a *app) requireAdmin(ctx context.Context) (*shop.User, error) {
	user, err := a.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if !user.Admin {
		return nil, fmt.Errorf("admins only")
	}
	return user, nil
}
