package grocery

import (
	"Smart-Grocery-Backend/domain"
	"Smart-Grocery-Backend/entities"
	"Smart-Grocery-Backend/internal/utils"
	"Smart-Grocery-Backend/internal/utils/mailing"
	"Smart-Grocery-Backend/pkg/history"
	"context"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"strings"
	"time"
)

type (
	GroceryService interface {
		AddItem(ctx context.Context, req domain.AddItemRequest) (domain.GroceryItemResponse, error)
		UpdateItem(ctx context.Context, id uint, req domain.UpdateItemRequest) (domain.GroceryItemResponse, error)
		DeleteItem(ctx context.Context, id uint) (int64, error)
		GetItems(ctx context.Context) ([]domain.GroceryItemResponse, error)
		GetItemByID(ctx context.Context, id uint) (domain.GroceryItemResponse, error)
		ListExpiring(ctx context.Context, thresholdDays int) (domain.ExpiringItemsResponse, error)
		SendExpiryReminder(ctx context.Context, thresholdDays int) (domain.ExpiringItemsResponse, error)
	}

	groceryService struct {
		groceryRepository GroceryRepository
		historyService    history.HistoryService
		seedHistory       bool
	}
)

func NewGroceryService(groceryRepository GroceryRepository, historyService history.HistoryService, seedHistory bool) GroceryService {
	return &groceryService{
		groceryRepository: groceryRepository,
		historyService:    historyService,
		seedHistory:       seedHistory,
	}
}

func (s *groceryService) AddItem(ctx context.Context, req domain.AddItemRequest) (domain.GroceryItemResponse, error) {
	name := utils.NormalizeName(req.Name)
	if name == "" {
		return domain.GroceryItemResponse{}, domain.ErrItemNameRequired
	}

	shelfLifeDays := req.ShelfLifeDays
	if shelfLifeDays < 1 {
		shelfLifeDays = DefaultShelfLifeDays
	}

	expiryDate, err := ComputeExpiry(req.PurchaseDate, shelfLifeDays)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}

	item := &entities.GroceryItem{
		Name:          name,
		Category:      strings.TrimSpace(req.Category),
		PurchaseDate:  req.PurchaseDate,
		ShelfLifeDays: shelfLifeDays,
		ExpiryDate:    expiryDate,
	}

	if err := s.groceryRepository.AddItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}

	// Every created item seeds a one-item history basket so it counts as
	// co-occurrence evidence. Kept as an explicit second step rather than a
	// side effect inside the repository.
	if s.seedHistory {
		if _, err := s.historyService.AddBasket(ctx, []string{item.Name}); err != nil {
			return domain.GroceryItemResponse{}, err
		}
	}

	return s.toResponse(item, time.Now().UTC()), nil
}

func (s *groceryService) UpdateItem(ctx context.Context, id uint, req domain.UpdateItemRequest) (domain.GroceryItemResponse, error) {
	item, err := s.groceryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryItemResponse{}, domain.ErrItemNotFound
		}
		return domain.GroceryItemResponse{}, err
	}

	if name := utils.NormalizeName(req.Name); name != "" {
		item.Name = name
	}

	if req.Category != nil {
		item.Category = *req.Category
	}

	if req.PurchaseDate != "" {
		item.PurchaseDate = req.PurchaseDate
	}

	if req.ShelfLifeDays != nil {
		shelfLifeDays := *req.ShelfLifeDays
		if shelfLifeDays < 1 {
			shelfLifeDays = DefaultShelfLifeDays
		}
		item.ShelfLifeDays = shelfLifeDays
	}

	// Expiry is recomputed on every successful update, whether or not the
	// inputs it derives from were touched.
	expiryDate, err := ComputeExpiry(item.PurchaseDate, item.ShelfLifeDays)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}
	item.ExpiryDate = expiryDate

	if err := s.groceryRepository.UpdateItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}

	return s.toResponse(item, time.Now().UTC()), nil
}

func (s *groceryService) DeleteItem(ctx context.Context, id uint) (int64, error) {
	return s.groceryRepository.DeleteItem(ctx, id)
}

func (s *groceryService) GetItems(ctx context.Context) ([]domain.GroceryItemResponse, error) {
	items, err := s.groceryRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	response := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, s.toResponse(item, now))
	}

	return response, nil
}

func (s *groceryService) GetItemByID(ctx context.Context, id uint) (domain.GroceryItemResponse, error) {
	item, err := s.groceryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryItemResponse{}, domain.ErrItemNotFound
		}
		return domain.GroceryItemResponse{}, err
	}

	return s.toResponse(item, time.Now().UTC()), nil
}

func (s *groceryService) ListExpiring(ctx context.Context, thresholdDays int) (domain.ExpiringItemsResponse, error) {
	items, err := s.groceryRepository.GetItems(ctx)
	if err != nil {
		return domain.ExpiringItemsResponse{}, err
	}

	today := time.Now().UTC()
	expiring := make([]domain.ExpiringItem, 0)
	for _, item := range items {
		daysLeft, err := DaysLeft(item.ExpiryDate, today)
		if err != nil {
			// A record with an unparseable expiry is excluded, not fatal.
			continue
		}

		if daysLeft <= thresholdDays {
			expiring = append(expiring, domain.ExpiringItem{
				ID:         item.ID,
				Name:       item.Name,
				ExpiryDate: item.ExpiryDate,
				DaysLeft:   daysLeft,
			})
		}
	}

	return domain.ExpiringItemsResponse{
		Count: len(expiring),
		Items: expiring,
	}, nil
}

func (s *groceryService) SendExpiryReminder(ctx context.Context, thresholdDays int) (domain.ExpiringItemsResponse, error) {
	toEmail := utils.GetConfig("REMINDER_EMAIL")
	if toEmail == "" {
		return domain.ExpiringItemsResponse{}, domain.ErrReminderEmailNotSet
	}

	expiring, err := s.ListExpiring(ctx, thresholdDays)
	if err != nil {
		return domain.ExpiringItemsResponse{}, err
	}

	subject := fmt.Sprintf("Grocery expiry reminder: %d item(s) need attention", expiring.Count)
	if err := mailing.SendMail(toEmail, subject, buildReminderBody(expiring)); err != nil {
		return domain.ExpiringItemsResponse{}, err
	}

	return expiring, nil
}

func (s *groceryService) toResponse(item *entities.GroceryItem, today time.Time) domain.GroceryItemResponse {
	// Status is derived for display only; an unparseable expiry simply
	// leaves it empty.
	status, err := ClassifyExpiry(item.ExpiryDate, today, DefaultShelfLifeDays)
	if err != nil {
		status = ""
	}

	return domain.GroceryItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Category:      item.Category,
		PurchaseDate:  item.PurchaseDate,
		ShelfLifeDays: item.ShelfLifeDays,
		ExpiryDate:    item.ExpiryDate,
		Status:        status,
	}
}

func buildReminderBody(expiring domain.ExpiringItemsResponse) string {
	var b strings.Builder
	b.WriteString("<p>The following items are expiring soon or already expired:</p><ul>")
	for _, item := range expiring.Items {
		switch {
		case item.DaysLeft < 0:
			fmt.Fprintf(&b, "<li><b>%s</b> expired on %s</li>", item.Name, item.ExpiryDate)
		case item.DaysLeft == 0:
			fmt.Fprintf(&b, "<li><b>%s</b> expires today (%s)</li>", item.Name, item.ExpiryDate)
		default:
			fmt.Fprintf(&b, "<li><b>%s</b> expires in %d day(s), on %s</li>", item.Name, item.DaysLeft, item.ExpiryDate)
		}
	}
	b.WriteString("</ul>")
	return b.String()
}
