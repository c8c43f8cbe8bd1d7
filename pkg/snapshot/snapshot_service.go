package snapshot

import (
	"Smart-Grocery-Backend/domain"
	"Smart-Grocery-Backend/internal/utils/storage"
	"Smart-Grocery-Backend/pkg/grocery"
	"Smart-Grocery-Backend/pkg/history"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type (
	SnapshotService interface {
		// Export writes the current inventory and basket history as one
		// flat JSON document to the configured object store and returns
		// where it landed.
		Export(ctx context.Context) (domain.ExportSnapshotResponse, error)
	}

	snapshotService struct {
		groceryRepository grocery.GroceryRepository
		historyRepository history.HistoryRepository
		store             storage.ObjectStore
	}
)

func NewSnapshotService(groceryRepository grocery.GroceryRepository, historyRepository history.HistoryRepository, store storage.ObjectStore) SnapshotService {
	return &snapshotService{
		groceryRepository: groceryRepository,
		historyRepository: historyRepository,
		store:             store,
	}
}

func (s *snapshotService) Export(ctx context.Context) (domain.ExportSnapshotResponse, error) {
	items, err := s.groceryRepository.GetItems(ctx)
	if err != nil {
		return domain.ExportSnapshotResponse{}, err
	}

	baskets, err := s.historyRepository.GetBaskets(ctx)
	if err != nil {
		return domain.ExportSnapshotResponse{}, err
	}

	doc := domain.SnapshotDocument{
		Inventory: make([]domain.GroceryItemResponse, 0, len(items)),
		History:   make([]domain.BasketResponse, 0, len(baskets)),
	}

	for _, item := range items {
		doc.Inventory = append(doc.Inventory, domain.GroceryItemResponse{
			ID:            item.ID,
			Name:          item.Name,
			Category:      item.Category,
			PurchaseDate:  item.PurchaseDate,
			ShelfLifeDays: item.ShelfLifeDays,
			ExpiryDate:    item.ExpiryDate,
		})
	}

	for _, basket := range baskets {
		doc.History = append(doc.History, domain.BasketResponse{
			ID:    basket.ID,
			Items: history.DecodeBasket(basket.ItemsJSON),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return domain.ExportSnapshotResponse{}, err
	}

	key := fmt.Sprintf("snapshots/grocery-%s-%s.json",
		time.Now().Format("20060102-150405"), uuid.NewString()[:8])

	location, err := s.store.Put(ctx, key, data, "application/json")
	if err != nil {
		return domain.ExportSnapshotResponse{}, err
	}

	return domain.ExportSnapshotResponse{
		Key:         location,
		ItemCount:   len(doc.Inventory),
		BasketCount: len(doc.History),
	}, nil
}
