package migration

import (
	"fmt"
	"log"

	"github.com/Kausha3/smart-pantry/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PantryItem{}); err != nil {
		log.Fatalf("Error migrating pantry item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ReceiptScan{}); err != nil {
		log.Fatalf("Error migrating receipt scan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NotificationPreference{}); err != nil {
		log.Fatalf("Error migrating notification preference database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PushSubscription{}); err != nil {
		log.Fatalf("Error migrating push subscription database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MonthlyStat{}); err != nil {
		log.Fatalf("Error migrating monthly stat database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
