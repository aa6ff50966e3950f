// Command api runs a local inventory CRUD server so the console can be used
// and tested without external infrastructure. It keeps products in memory
// unless INVENTORY_DATABASE_URL points at a Postgres instance.
package main

import (
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-console/internal/config"
	"github.com/rogerio-castellano/inventory-console/internal/db"
	"github.com/rogerio-castellano/inventory-console/internal/logging"
	"github.com/rogerio-castellano/inventory-console/internal/repo"
	"github.com/rogerio-castellano/inventory-console/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		os.Exit(1)
	}

	logger, err := logging.NewStdout(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error setting up logging:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	server.SetLogger(logger)

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("could not connect to database", zap.Error(err))
		}
		defer database.Close()
		server.SetProductRepo(repo.NewPostgresProductRepository(database))
		logger.Info("using postgres repository")
	} else {
		server.SetProductRepo(repo.NewInMemoryProductRepository())
		logger.Info("using in-memory repository")
	}

	go server.StartVisitorCleanupLoop()

	logger.Info("listening", zap.String("addr", cfg.ServerAddr))
	if err := http.ListenAndServe(cfg.ServerAddr, server.NewRouter()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
