package entities

// PurchaseBasket is one append-only history entry. The item names are kept as
// a JSON-encoded array in insertion order, matching the wire shape callers
// send and receive.
type PurchaseBasket struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemsJSON string `gorm:"type:text;not null" json:"-"`

	Timestamp
}
