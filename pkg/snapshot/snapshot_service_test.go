package snapshot

import (
	"Smart-Grocery-Backend/domain"
	"Smart-Grocery-Backend/entities"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

type fakeGroceryRepository struct {
	items []*entities.GroceryItem
}

func (r *fakeGroceryRepository) AddItem(_ context.Context, item *entities.GroceryItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakeGroceryRepository) GetItemByID(_ context.Context, _ uint) (*entities.GroceryItem, error) {
	return nil, nil
}

func (r *fakeGroceryRepository) UpdateItem(_ context.Context, _ *entities.GroceryItem) error {
	return nil
}

func (r *fakeGroceryRepository) DeleteItem(_ context.Context, _ uint) (int64, error) {
	return 0, nil
}

func (r *fakeGroceryRepository) GetItems(_ context.Context) ([]*entities.GroceryItem, error) {
	return r.items, nil
}

type fakeHistoryRepository struct {
	baskets []*entities.PurchaseBasket
}

func (r *fakeHistoryRepository) CreateBasket(_ context.Context, basket *entities.PurchaseBasket) error {
	r.baskets = append(r.baskets, basket)
	return nil
}

func (r *fakeHistoryRepository) GetBaskets(_ context.Context) ([]*entities.PurchaseBasket, error) {
	return r.baskets, nil
}

type fakeObjectStore struct {
	key         string
	body        []byte
	contentType string
}

func (s *fakeObjectStore) Put(_ context.Context, key string, body []byte, contentType string) (string, error) {
	s.key = key
	s.body = body
	s.contentType = contentType
	return "stored/" + key, nil
}

func TestExportWritesFlatDocument(t *testing.T) {
	groceryRepo := &fakeGroceryRepository{
		items: []*entities.GroceryItem{
			{ID: 1, Name: "milk", Category: "dairy", PurchaseDate: "2025-11-01", ShelfLifeDays: 10, ExpiryDate: "2025-11-11"},
			{ID: 2, Name: "cereal", Category: "breakfast", PurchaseDate: "2025-11-02", ShelfLifeDays: 180, ExpiryDate: "2026-05-01"},
		},
	}
	historyRepo := &fakeHistoryRepository{
		baskets: []*entities.PurchaseBasket{
			{ID: 1, ItemsJSON: `["milk","cereal"]`},
			{ID: 2, ItemsJSON: `{corrupt`},
		},
	}
	store := &fakeObjectStore{}

	service := NewSnapshotService(groceryRepo, historyRepo, store)
	res, err := service.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if res.ItemCount != 2 || res.BasketCount != 2 {
		t.Errorf("counts = %d items, %d baskets; want 2 and 2", res.ItemCount, res.BasketCount)
	}
	if !strings.HasPrefix(res.Key, "stored/snapshots/grocery-") {
		t.Errorf("key = %q, want stored/snapshots/grocery- prefix", res.Key)
	}
	if !strings.HasSuffix(store.key, ".json") {
		t.Errorf("object key = %q, want .json suffix", store.key)
	}
	if store.contentType != "application/json" {
		t.Errorf("content type = %q, want application/json", store.contentType)
	}

	var doc domain.SnapshotDocument
	if err := json.Unmarshal(store.body, &doc); err != nil {
		t.Fatalf("unmarshal stored document: %v", err)
	}

	if len(doc.Inventory) != 2 || doc.Inventory[0].Name != "milk" || doc.Inventory[1].ExpiryDate != "2026-05-01" {
		t.Errorf("inventory = %+v", doc.Inventory)
	}
	if len(doc.History) != 2 {
		t.Fatalf("history = %+v", doc.History)
	}
	if len(doc.History[0].Items) != 2 {
		t.Errorf("basket 1 items = %v, want [milk cereal]", doc.History[0].Items)
	}
	if len(doc.History[1].Items) != 0 {
		t.Errorf("corrupt basket should export as empty, got %v", doc.History[1].Items)
	}
}

func TestExportEmptyDatabase(t *testing.T) {
	store := &fakeObjectStore{}
	service := NewSnapshotService(&fakeGroceryRepository{}, &fakeHistoryRepository{}, store)

	res, err := service.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.ItemCount != 0 || res.BasketCount != 0 {
		t.Errorf("counts = %+v, want zeros", res)
	}

	// Empty collections must export as JSON arrays, not nulls.
	body := string(store.body)
	if !strings.Contains(body, `"inventory": []`) || !strings.Contains(body, `"history": []`) {
		t.Errorf("document should contain empty arrays:\n%s", body)
	}
}
