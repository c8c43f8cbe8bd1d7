package domain

var (
	MessageSuccessExportSnapshot = "snapshot exported successfully"

	MessageFailedExportSnapshot = "failed to export snapshot"
)

type (
	// SnapshotDocument is the flat JSON document written to the object
	// store, the same shape the inventory and history round-trip through.
	SnapshotDocument struct {
		Inventory []GroceryItemResponse `json:"inventory"`
		History   []BasketResponse      `json:"history"`
	}

	ExportSnapshotResponse struct {
		Key         string `json:"key"`
		ItemCount   int    `json:"item_count"`
		BasketCount int    `json:"basket_count"`
	}
)
