package history

import (
	"Smart-Grocery-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	HistoryRepository interface {
		CreateBasket(ctx context.Context, basket *entities.PurchaseBasket) error
		GetBaskets(ctx context.Context) ([]*entities.PurchaseBasket, error)
	}

	historyRepository struct {
		db *gorm.DB
	}
)

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) CreateBasket(ctx context.Context, basket *entities.PurchaseBasket) error {
	return r.db.WithContext(ctx).Create(basket).Error
}

func (r *historyRepository) GetBaskets(ctx context.Context) ([]*entities.PurchaseBasket, error) {
	var baskets []*entities.PurchaseBasket
	if err := r.db.WithContext(ctx).Order("id asc").Find(&baskets).Error; err != nil {
		return nil, err
	}
	return baskets, nil
}
