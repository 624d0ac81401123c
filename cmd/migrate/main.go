package main

import (
	"flag"
	"fmt"
	"log"

	"genai-studio-be/internal/config"
	"genai-studio-be/internal/model"
	"genai-studio-be/internal/pkg/logger"
	"genai-studio-be/pkg/database"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "list the tables that would be migrated and exit")
	flag.Parse()

	cfg := config.Load()

	if *dryRun {
		for _, m := range model.All() {
			fmt.Printf("%T\n", m)
		}
		return
	}

	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING is not set")
	}

	appLogger := logger.NewZapLogger(logger.Options{
		FilePath:   cfg.App.LogFilePath,
		Production: cfg.IsProduction(),
		Level:      cfg.App.LogLevel,
	})
	defer appLogger.Sync()

	db, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatalf("connect %s: %v", cfg.Database.Driver, err)
	}

	details := map[string]interface{}{"driver": cfg.Database.Driver, "tables": len(model.All())}
	appLogger.Info("MIGRATE", "Running AutoMigrate", details)
	if err := model.AutoMigrate(db); err != nil {
		details["error"] = err
		appLogger.Error("MIGRATE", "AutoMigrate failed", details)
		log.Fatal(err)
	}
	appLogger.Info("MIGRATE", "Schema is up to date", details)
}
