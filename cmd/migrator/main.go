package main

import (
	"flag"
	"log/slog"
	"os"

	"fitter/internal/lib/sl"
	"fitter/migrations"

	"github.com/ilyakaznacheev/cleanenv"
)

type migratorConfig struct {
	DSN string `env:"DATABASE_URL" env-required:"true"`
}

func main() {
	var direction string
	flag.StringVar(&direction, "direction", "up", "Migration direction: up, down or version")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var cfg migratorConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Error("failed to read environment", sl.Err(err))
		os.Exit(1)
	}

	switch direction {
	case "up":
		if err := migrations.Up(cfg.DSN); err != nil {
			log.Error("migration failed", sl.Err(err))
			os.Exit(1)
		}
	case "down":
		if err := migrations.Down(cfg.DSN); err != nil {
			log.Error("rollback failed", sl.Err(err))
			os.Exit(1)
		}
	case "version":
	default:
		log.Error("unknown direction", slog.String("direction", direction))
		os.Exit(2)
	}

	version, dirty, err := migrations.Version(cfg.DSN)
	if err != nil {
		log.Error("failed to read schema version", sl.Err(err))
		os.Exit(1)
	}

	log.Info("schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
}
