package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/config"
	repository "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/apparel-storefront/migrations"
	"github.com/pressly/goose/v3"
)

// Usage: migrate [-config path] [up|down|status|version|redo|reset] [args...]
func main() {

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	// MustLoad skips flag parsing when CONFIG_PATH is set
	if !flag.Parsed() {
		flag.Parse()
	}

	command := "up"
	var args []string

	if arguments := flag.Args(); len(arguments) > 0 {
		command = arguments[0]
		args = arguments[1:]
	}

	ctx := context.Background()

	repos, err := repository.New(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error connecting to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer repos.Close()

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		slog.Error("❌ Unsupported migration dialect", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := goose.RunContext(ctx, command, repos.DB, ".", args...); err != nil {
		slog.Error("❌ Migration failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("✅ Migration complete", slog.String("command", command))
}
