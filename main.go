package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/ai"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/config"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/database"
	"github.com/aqilaqsy-bot/smart-shopping-planner/internal/router"
	"github.com/aqilaqsy-bot/smart-shopping-planner/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()

	// startup diagnostics; the password itself is never logged
	password := "[MISSING/EMPTY]"
	if cfg.Database.Password != "" {
		password = "[PROVIDED]"
	}
	slog.Info("connecting to database",
		"driver", cfg.Database.Driver,
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"user", cfg.Database.User,
		"database", cfg.Database.Name,
		"password", password,
	)

	db, err := database.Init(cfg.Database)
	if err != nil {
		slog.Error("init database", "err", err)
		slog.Error("ensure the database server is on and the configured database exists")
		os.Exit(1)
	}
	if err := database.AutoMigrate(db); err != nil {
		slog.Error("migrate database", "err", err)
		os.Exit(1)
	}
	slog.Info("database connected and migrated")

	aiClient := ai.NewClient(cfg.AI)
	r := router.SetupRouter(cfg, db, aiClient)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("run server", "err", err)
		os.Exit(1)
	}
}
