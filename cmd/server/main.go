package main

import (
	"log"
	"os"

	"github.com/Kausha3/smart-pantry/cmd/config"
	migration "github.com/Kausha3/smart-pantry/cmd/database/migrate"
	"github.com/Kausha3/smart-pantry/internal/utils"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; config.yaml carries the full configuration.
	_ = godotenv.Load()
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, scheduler, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	scheduler.Start()
	defer scheduler.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
