package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hotelconcierge/internal/app"
	"hotelconcierge/internal/config"
	"hotelconcierge/internal/logger"
)

const serviceName = "hotel-concierge"

func main() {
	// A missing .env is fine, the environment and config file take over.
	_ = godotenv.Load()

	conf, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	l, err := logger.New(conf.LogLevel, conf.LogFormat, serviceName)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	var exitCode int

	if err := app.Run(l, conf); err != nil {
		l.Error("Failed to run app", zap.Error(err))

		exitCode = 1
	}

	_ = l.Sync()

	os.Exit(exitCode)
}
