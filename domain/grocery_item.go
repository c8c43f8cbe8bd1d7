package domain

import (
	"errors"
)

var (
	MessageSuccessAddItem          = "grocery item added successfully"
	MessageSuccessUpdateItem       = "grocery item updated successfully"
	MessageSuccessDeleteItem       = "grocery item deleted successfully"
	MessageSuccessGetItems         = "grocery items retrieved successfully"
	MessageSuccessGetExpiringItems = "expiring items retrieved successfully"
	MessageSuccessSendReminder     = "expiry reminder sent successfully"

	MessageFailedAddItem          = "failed to add grocery item"
	MessageFailedUpdateItem       = "failed to update grocery item"
	MessageFailedDeleteItem       = "failed to delete grocery item"
	MessageFailedGetItems         = "failed to retrieve grocery items"
	MessageFailedGetExpiringItems = "failed to retrieve expiring items"
	MessageFailedSendReminder     = "failed to send expiry reminder"

	ErrItemNotFound        = errors.New("grocery item not found")
	ErrItemNameRequired    = errors.New("item name must not be empty")
	ErrInvalidPurchaseDate = errors.New("invalid purchase date, expected YYYY-MM-DD")
	ErrReminderEmailNotSet = errors.New("reminder email address not configured")
)

type (
	AddItemRequest struct {
		Name          string `json:"name" validate:"required"`
		Category      string `json:"category"`
		PurchaseDate  string `json:"purchase_date" validate:"required"`
		ShelfLifeDays int    `json:"shelf_life_days" validate:"omitempty"`
	}

	// UpdateItemRequest carries a partial update. Pointer fields distinguish
	// "absent" from a zero value so category can be cleared and shelf life
	// can be set explicitly.
	UpdateItemRequest struct {
		Name          string  `json:"name" validate:"omitempty"`
		Category      *string `json:"category" validate:"omitempty"`
		PurchaseDate  string  `json:"purchase_date" validate:"omitempty"`
		ShelfLifeDays *int    `json:"shelf_life_days" validate:"omitempty"`
	}

	GroceryItemResponse struct {
		ID            uint   `json:"id"`
		Name          string `json:"name"`
		Category      string `json:"category"`
		PurchaseDate  string `json:"purchase_date"`
		ShelfLifeDays int    `json:"shelf_life_days"`
		ExpiryDate    string `json:"expiry_date"`
		Status        string `json:"status,omitempty"`
	}

	DeleteItemResponse struct {
		Deleted int64 `json:"deleted"`
	}

	ExpiringItem struct {
		ID         uint   `json:"id"`
		Name       string `json:"name"`
		ExpiryDate string `json:"expiry_date"`
		DaysLeft   int    `json:"days_left"`
	}

	ExpiringItemsResponse struct {
		Count int            `json:"count"`
		Items []ExpiringItem `json:"items"`
	}
)
