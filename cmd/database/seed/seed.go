package seed

import (
	"Smart-Grocery-Backend/domain"
	"Smart-Grocery-Backend/pkg/grocery"
	"Smart-Grocery-Backend/pkg/history"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Seed loads a small sample inventory and basket history so the
// recommendation endpoints have something to chew on from a fresh database.
func Seed(db *gorm.DB) error {
	ctx := context.Background()

	historyService := history.NewHistoryService(history.NewHistoryRepository(db))
	groceryService := grocery.NewGroceryService(grocery.NewGroceryRepository(db), historyService, true)

	sampleItems := []domain.AddItemRequest{
		{Name: "milk", Category: "dairy", PurchaseDate: "2025-10-30", ShelfLifeDays: 10},
		{Name: "white bread", Category: "bakery", PurchaseDate: "2025-11-01", ShelfLifeDays: 4},
		{Name: "cereal", Category: "breakfast", PurchaseDate: "2025-11-02", ShelfLifeDays: 180},
	}
	for _, item := range sampleItems {
		if _, err := groceryService.AddItem(ctx, item); err != nil {
			return err
		}
	}

	sampleBaskets := [][]string{
		{"milk", "cereal", "banana"},
		{"white bread", "jam", "butter"},
		{"milk", "cookies"},
		{"white bread", "peanut butter"},
		{"milk", "cereal"},
	}
	for _, basket := range sampleBaskets {
		if _, err := historyService.AddBasket(ctx, basket); err != nil {
			return err
		}
	}

	fmt.Println("Database seeding complete")
	return nil
}
