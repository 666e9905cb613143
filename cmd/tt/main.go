package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alexanderramin/tt/internal/cli"
	"github.com/alexanderramin/tt/internal/config"
	"github.com/alexanderramin/tt/internal/db"
	"github.com/alexanderramin/tt/internal/repository"
	"github.com/alexanderramin/tt/internal/tracker"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("database opened", "path", cfg.DB.Path)

	tr := tracker.New(
		repository.NewSQLiteProjectRepo(database),
		repository.NewSQLiteEntryRepo(database),
		db.NewSQLiteUnitOfWork(database),
		tracker.WithLocation(loc),
	)

	app := &cli.App{
		Tracker: tr,
		Log:     logger,
		Loc:     loc,
		Now:     time.Now,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
