package migration

import (
	"fmt"
	"log"

	"nutritrack-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealRecord{}); err != nil {
		log.Fatalf("Error migrating meal record database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealFood{}); err != nil {
		log.Fatalf("Error migrating meal food database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
