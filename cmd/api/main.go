package main

import (
	"fmt"
	"os"

	"github.com/seap-dev/subscription-api/internal/config"
	"github.com/seap-dev/subscription-api/internal/storage/postgres"
	"github.com/seap-dev/subscription-api/pkg/logger"
)

// connectivity smoke check: load config, open the pool, ping, exit
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error to load config: %s", err)
	}
	log := logger.SetupLogger(cfg.Logger.Level, cfg.Logger.Format, "subscription_api")

	db, err := postgres.NewPostgres(cfg, log)
	if err != nil {
		log.Error("could not initialize database storage")
		os.Exit(1)
	}
	defer db.Close()

	log.Info("application is ready to work")
}
