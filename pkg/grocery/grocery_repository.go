package grocery

import (
	"Smart-Grocery-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	GroceryRepository interface {
		AddItem(ctx context.Context, item *entities.GroceryItem) error
		GetItemByID(ctx context.Context, id uint) (*entities.GroceryItem, error)
		UpdateItem(ctx context.Context, item *entities.GroceryItem) error
		DeleteItem(ctx context.Context, id uint) (int64, error)
		GetItems(ctx context.Context) ([]*entities.GroceryItem, error)
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) AddItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *groceryRepository) GetItemByID(ctx context.Context, id uint) (*entities.GroceryItem, error) {
	var item entities.GroceryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *groceryRepository) UpdateItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *groceryRepository) DeleteItem(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryItem{})
	return res.RowsAffected, res.Error
}

func (r *groceryRepository) GetItems(ctx context.Context) ([]*entities.GroceryItem, error) {
	var items []*entities.GroceryItem
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
