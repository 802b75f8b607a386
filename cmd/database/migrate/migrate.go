package migration

import (
	"fmt"
	"log"

	"rumbles-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.CartSnapshot{}); err != nil {
		log.Printf("Error migrating cart snapshot database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
