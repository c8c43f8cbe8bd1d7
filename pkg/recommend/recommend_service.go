package recommend

import (
	"Smart-Grocery-Backend/domain"
	"Smart-Grocery-Backend/internal/utils"
	"Smart-Grocery-Backend/pkg/history"
	"context"
	"sort"
)

const DefaultTopK = 10

type (
	RecommendService interface {
		// Recommend ranks items that historically co-occur with the
		// caller's current basket. Items already in the basket are never
		// recommended back. An empty basket, an empty ledger, or a
		// non-positive topK yields an empty list.
		Recommend(ctx context.Context, current []string, topK int) ([]domain.Recommendation, error)
	}

	recommendService struct {
		historyRepository history.HistoryRepository
	}
)

func NewRecommendService(historyRepository history.HistoryRepository) RecommendService {
	return &recommendService{historyRepository: historyRepository}
}

func (s *recommendService) Recommend(ctx context.Context, current []string, topK int) ([]domain.Recommendation, error) {
	recommendations := make([]domain.Recommendation, 0)

	if topK <= 0 {
		return recommendations, nil
	}

	currentSet := make(map[string]bool, len(current))
	for _, raw := range current {
		if name := utils.NormalizeName(raw); name != "" {
			currentSet[name] = true
		}
	}
	if len(currentSet) == 0 {
		return recommendations, nil
	}

	baskets, err := s.historyRepository.GetBaskets(ctx)
	if err != nil {
		return nil, err
	}

	// The symmetric co-occurrence table is rebuilt from the full ledger on
	// every call: O(sum of basket size squared). Fine at household scale;
	// there is deliberately no incremental index to keep in sync.
	co := make(map[string]map[string]int)
	for _, basket := range baskets {
		unique := history.NormalizeBasket(history.DecodeBasket(basket.ItemsJSON))
		for _, i := range unique {
			row := co[i]
			if row == nil {
				row = make(map[string]int)
				co[i] = row
			}
			for _, j := range unique {
				if i == j {
					continue
				}
				row[j]++
			}
		}
	}

	scores := make(map[string]int)
	for item := range currentSet {
		for other, count := range co[item] {
			if !currentSet[other] {
				scores[other] += count
			}
		}
	}

	for name, score := range scores {
		recommendations = append(recommendations, domain.Recommendation{Name: name, Score: score})
	}

	// Score descending, name ascending. The secondary key makes the ranking
	// reproducible across runs regardless of map iteration order.
	sort.Slice(recommendations, func(a, b int) bool {
		if recommendations[a].Score != recommendations[b].Score {
			return recommendations[a].Score > recommendations[b].Score
		}
		return recommendations[a].Name < recommendations[b].Name
	})

	if len(recommendations) > topK {
		recommendations = recommendations[:topK]
	}

	return recommendations, nil
}
