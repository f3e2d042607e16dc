package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/simplechat/internal/client/cli"
	"github.com/iudanet/simplechat/internal/client/iocli"
	"github.com/iudanet/simplechat/internal/directory"
	"github.com/iudanet/simplechat/internal/messaging"
	"github.com/iudanet/simplechat/internal/session"
	"github.com/iudanet/simplechat/internal/storage"
	"github.com/iudanet/simplechat/internal/storage/boltdb"
	"github.com/iudanet/simplechat/internal/storage/sqlitekv"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "simplechat.db", "Path to local database")
	backend := flag.String("backend", "bolt", "Storage backend: bolt or sqlite")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	// Открываем хранилище выбранного backend
	store, err := openStore(ctx, *backend, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Собираем сервисы поверх одного хранилища
	app := cli.New(
		iocli.NewStdio(),
		directory.NewService(store),
		messaging.NewService(store),
		session.NewManager(store),
	)

	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, backend, dbPath string) (storage.Store, error) {
	switch backend {
	case "bolt":
		return boltdb.New(ctx, dbPath)
	case "sqlite":
		return sqlitekv.New(ctx, dbPath)
	default:
		return nil, fmt.Errorf("unknown backend: %s (use bolt or sqlite)", backend)
	}
}

func printVersion() {
	fmt.Printf("SimpleChat\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
