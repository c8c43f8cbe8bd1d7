package entities

type GroceryItem struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"index;not null" json:"name"`
	Category      string `gorm:"default:''" json:"category"`
	PurchaseDate  string `gorm:"not null" json:"purchase_date"` // ISO date string YYYY-MM-DD
	ShelfLifeDays int    `gorm:"default:7" json:"shelf_life_days"`
	ExpiryDate    string `gorm:"not null" json:"expiry_date"` // ISO date string YYYY-MM-DD

	Timestamp
}
