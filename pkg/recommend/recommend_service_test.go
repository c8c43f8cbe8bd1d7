package recommend

import (
	"Smart-Grocery-Backend/domain"
	"Smart-Grocery-Backend/entities"
	"context"
	"encoding/json"
	"reflect"
	"testing"
)

type fakeHistoryRepository struct {
	baskets []*entities.PurchaseBasket
}

func (r *fakeHistoryRepository) CreateBasket(_ context.Context, basket *entities.PurchaseBasket) error {
	basket.ID = uint(len(r.baskets) + 1)
	r.baskets = append(r.baskets, basket)
	return nil
}

func (r *fakeHistoryRepository) GetBaskets(_ context.Context) ([]*entities.PurchaseBasket, error) {
	return r.baskets, nil
}

func repoWithBaskets(t *testing.T, baskets ...[]string) *fakeHistoryRepository {
	t.Helper()
	repo := &fakeHistoryRepository{}
	for i, items := range baskets {
		itemsJSON, err := json.Marshal(items)
		if err != nil {
			t.Fatalf("marshal basket %d: %v", i, err)
		}
		repo.baskets = append(repo.baskets, &entities.PurchaseBasket{
			ID:        uint(i + 1),
			ItemsJSON: string(itemsJSON),
		})
	}
	return repo
}

func TestRecommendEmptyInputs(t *testing.T) {
	service := NewRecommendService(repoWithBaskets(t, []string{"milk", "cereal"}))
	ctx := context.Background()

	tests := []struct {
		name    string
		current []string
		topK    int
	}{
		{"empty current basket", nil, 10},
		{"whitespace only current basket", []string{" ", ""}, 10},
		{"zero top k", []string{"milk"}, 0},
		{"negative top k", []string{"milk"}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := service.Recommend(ctx, tt.current, tt.topK)
			if err != nil {
				t.Fatalf("Recommend: %v", err)
			}
			if len(recs) != 0 {
				t.Errorf("expected empty recommendations, got %v", recs)
			}
		})
	}
}

func TestRecommendEmptyLedger(t *testing.T) {
	service := NewRecommendService(&fakeHistoryRepository{})

	recs, err := service.Recommend(context.Background(), []string{"milk"}, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty recommendations with no history, got %v", recs)
	}
}

func TestRecommendSymmetry(t *testing.T) {
	service := NewRecommendService(repoWithBaskets(t, []string{"a", "b"}))
	ctx := context.Background()

	recsA, err := service.Recommend(ctx, []string{"a"}, 10)
	if err != nil {
		t.Fatalf("Recommend([a]): %v", err)
	}
	if want := []domain.Recommendation{{Name: "b", Score: 1}}; !reflect.DeepEqual(recsA, want) {
		t.Errorf("Recommend([a]) = %v, want %v", recsA, want)
	}

	recsB, err := service.Recommend(ctx, []string{"b"}, 10)
	if err != nil {
		t.Fatalf("Recommend([b]): %v", err)
	}
	if want := []domain.Recommendation{{Name: "a", Score: 1}}; !reflect.DeepEqual(recsB, want) {
		t.Errorf("Recommend([b]) = %v, want %v", recsB, want)
	}
}

func TestRecommendExcludesCurrentBasket(t *testing.T) {
	// milk co-occurs with itself across baskets, but must never be
	// recommended back to a basket that already contains it.
	service := NewRecommendService(repoWithBaskets(t,
		[]string{"milk", "cereal"},
		[]string{"milk", "cookies"},
	))

	recs, err := service.Recommend(context.Background(), []string{"milk", "cereal"}, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, rec := range recs {
		if rec.Name == "milk" || rec.Name == "cereal" {
			t.Errorf("current basket item %q leaked into recommendations", rec.Name)
		}
	}
	if want := []domain.Recommendation{{Name: "cookies", Score: 1}}; !reflect.DeepEqual(recs, want) {
		t.Errorf("recommendations = %v, want %v", recs, want)
	}
}

func TestRecommendRankingWithTieBreak(t *testing.T) {
	service := NewRecommendService(repoWithBaskets(t,
		[]string{"milk", "cereal", "banana"},
		[]string{"milk", "cookies"},
		[]string{"milk", "cereal"},
	))

	recs, err := service.Recommend(context.Background(), []string{"milk"}, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	// cereal scores 2; banana and cookies tie at 1 and resolve
	// lexicographically.
	want := []domain.Recommendation{
		{Name: "cereal", Score: 2},
		{Name: "banana", Score: 1},
		{Name: "cookies", Score: 1},
	}
	if !reflect.DeepEqual(recs, want) {
		t.Errorf("recommendations = %v, want %v", recs, want)
	}
}

func TestRecommendTopKTruncates(t *testing.T) {
	service := NewRecommendService(repoWithBaskets(t,
		[]string{"milk", "cereal", "banana"},
		[]string{"milk", "cookies"},
		[]string{"milk", "cereal"},
	))

	recs, err := service.Recommend(context.Background(), []string{"milk"}, 2)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	want := []domain.Recommendation{
		{Name: "cereal", Score: 2},
		{Name: "banana", Score: 1},
	}
	if !reflect.DeepEqual(recs, want) {
		t.Errorf("recommendations = %v, want %v", recs, want)
	}
}

func TestRecommendDuplicatesInsideBasketDoNotInflate(t *testing.T) {
	service := NewRecommendService(repoWithBaskets(t,
		[]string{"milk", "milk", "Milk", "cereal"},
	))

	recs, err := service.Recommend(context.Background(), []string{"milk"}, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if want := []domain.Recommendation{{Name: "cereal", Score: 1}}; !reflect.DeepEqual(recs, want) {
		t.Errorf("recommendations = %v, want %v", recs, want)
	}
}

func TestRecommendNormalizesCurrentBasket(t *testing.T) {
	service := NewRecommendService(repoWithBaskets(t, []string{"milk", "cereal"}))

	recs, err := service.Recommend(context.Background(), []string{"  MILK  "}, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if want := []domain.Recommendation{{Name: "cereal", Score: 1}}; !reflect.DeepEqual(recs, want) {
		t.Errorf("recommendations = %v, want %v", recs, want)
	}
}

func TestRecommendSkipsCorruptBaskets(t *testing.T) {
	repo := repoWithBaskets(t, []string{"milk", "cereal"})
	repo.baskets = append(repo.baskets, &entities.PurchaseBasket{ID: 99, ItemsJSON: `{broken`})
	service := NewRecommendService(repo)

	recs, err := service.Recommend(context.Background(), []string{"milk"}, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if want := []domain.Recommendation{{Name: "cereal", Score: 1}}; !reflect.DeepEqual(recs, want) {
		t.Errorf("recommendations = %v, want %v", recs, want)
	}
}
