package history

import (
	"Smart-Grocery-Backend/domain"
	"Smart-Grocery-Backend/entities"
	"Smart-Grocery-Backend/internal/utils"
	"context"
	"encoding/json"
)

type (
	HistoryService interface {
		// AddBasket records one purchase basket. Names are normalized,
		// empty entries dropped, and duplicates collapsed; when nothing
		// survives, no record is created and a nil basket is returned.
		AddBasket(ctx context.Context, rawItems []string) (*domain.BasketResponse, error)
		GetBaskets(ctx context.Context) ([]domain.BasketResponse, error)
	}

	historyService struct {
		historyRepository HistoryRepository
	}
)

func NewHistoryService(historyRepository HistoryRepository) HistoryService {
	return &historyService{historyRepository: historyRepository}
}

func (s *historyService) AddBasket(ctx context.Context, rawItems []string) (*domain.BasketResponse, error) {
	items := NormalizeBasket(rawItems)
	if len(items) == 0 {
		return nil, nil
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	basket := &entities.PurchaseBasket{ItemsJSON: string(itemsJSON)}
	if err := s.historyRepository.CreateBasket(ctx, basket); err != nil {
		return nil, err
	}

	return &domain.BasketResponse{ID: basket.ID, Items: items}, nil
}

func (s *historyService) GetBaskets(ctx context.Context) ([]domain.BasketResponse, error) {
	baskets, err := s.historyRepository.GetBaskets(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.BasketResponse, 0, len(baskets))
	for _, basket := range baskets {
		response = append(response, domain.BasketResponse{
			ID:    basket.ID,
			Items: DecodeBasket(basket.ItemsJSON),
		})
	}

	return response, nil
}

// NormalizeBasket canonicalizes a raw item list: every name is normalized,
// empty results are dropped, and duplicates are collapsed keeping first-seen
// order.
func NormalizeBasket(rawItems []string) []string {
	seen := make(map[string]bool, len(rawItems))
	items := make([]string, 0, len(rawItems))
	for _, raw := range rawItems {
		name := utils.NormalizeName(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		items = append(items, name)
	}
	return items
}

// DecodeBasket unpacks a stored basket row. A row whose JSON no longer
// parses degrades to an empty basket instead of failing the whole listing.
func DecodeBasket(itemsJSON string) []string {
	var items []string
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return []string{}
	}
	if items == nil {
		return []string{}
	}
	return items
}
