package migration

import (
	"Smart-Grocery-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.GroceryItem{}); err != nil {
		log.Fatalf("Error migrating grocery item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PurchaseBasket{}); err != nil {
		log.Fatalf("Error migrating purchase basket database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
