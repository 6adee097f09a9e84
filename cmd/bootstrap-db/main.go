package main

import (
	"flag"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/oselabs/cfopilot/internal/config"
	"github.com/oselabs/cfopilot/internal/database"
)

func main() {
	schemaPath := flag.String("schema", "db/schema.sql", "path to the schema file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	schema, err := os.ReadFile(*schemaPath)
	if err != nil {
		slog.Error("failed to read schema", "path", *schemaPath, "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if _, err := db.Exec(string(schema)); err != nil {
		slog.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	slog.Info("schema applied", "path", *schemaPath)
}
