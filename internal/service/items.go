package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/sims/internal/events"
	"github.com/Skotchmaster/sims/internal/models"
	"github.com/Skotchmaster/sims/internal/repo"
	"github.com/Skotchmaster/sims/internal/transport"
	"github.com/Skotchmaster/sims/internal/util"
	"github.com/Skotchmaster/sims/pkg/logging"
)

const (
	OptionName        = "name"
	OptionDescription = "description"
)

type ItemService struct {
	Repo   *repo.GormRepo
	Events EventPublisher
	Index  ItemIndexer
}

type SearchParams struct {
	Term   string
	Limit  int
	Option string
}

func (s *ItemService) CreateItem(ctx context.Context, req transport.CreateItemRequest) (*models.Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name must not be empty: %w", ErrValidation)
	}
	if err := checkNonNegative(&req.Price, &req.Quantity, &req.SoldUnits, &req.Cost); err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Date:        req.Date,
		Status:      req.Status,
		SoldUnits:   req.SoldUnits,
		Cost:        req.Cost,
	}
	if item.Status == "" {
		item.Status = models.StatusAvailable
	}
	if item.Date.IsZero() {
		item.Date = models.Today()
	}

	if err := s.Repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, events.ItemEvent(events.ItemCreated, item), item)
	return item, nil
}

func (s *ItemService) ListItems(ctx context.Context, skip, limit int) ([]models.Item, error) {
	offset, size := util.Window(skip, limit)
	items, err := s.Repo.ListItems(ctx, offset, size)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no items: %w", ErrNotFound)
	}
	return items, nil
}

func (s *ItemService) SearchItems(ctx context.Context, p SearchParams) ([]models.Item, error) {
	if p.Term == "" {
		return s.ListItems(ctx, 0, p.Limit)
	}
	_, limit := util.Window(0, p.Limit)

	var (
		items []models.Item
		err   error
	)
	switch p.Option {
	case OptionName:
		items, err = s.Repo.SearchByName(ctx, p.Term, limit)
	case OptionDescription:
		items, err = s.Repo.SearchByDescription(ctx, p.Term, limit)
	default:
		cmp, ok := models.ParseComparison(p.Option)
		if !ok {
			items, err = s.Repo.SearchByNameOrDescription(ctx, p.Term, limit)
			break
		}
		price, valid := parsePrice(p.Term)
		if !valid {
			return nil, fmt.Errorf("price comparison needs a numeric term, got %q: %w", p.Term, ErrNotFound)
		}
		items, err = s.Repo.SearchByPrice(ctx, cmp, price, limit)
	}
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no items match %q: %w", p.Term, ErrNotFound)
	}
	return items, nil
}

// FullTextSearch asks the search index when it can answer queries and falls
// back to a substring match in the store otherwise, or when the index fails.
func (s *ItemService) FullTextSearch(ctx context.Context, query string, limit int) ([]models.Item, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must not be empty: %w", ErrValidation)
	}
	_, limit = util.Window(0, limit)

	var (
		items []models.Item
		err   error
	)
	searcher, ok := s.Index.(ItemSearcher)
	if ok {
		items, err = searcher.SearchItems(ctx, query, limit)
		if err != nil {
			logging.FromContext(ctx).Error("full_text_index_error", "query", query, "error", err)
			ok = false
		}
	}
	if !ok {
		items, err = s.Repo.SearchByNameOrDescription(ctx, query, limit)
		if err != nil {
			return nil, err
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no items match %q: %w", query, ErrNotFound)
	}
	return items, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, req transport.PatchItemRequest) (*models.Item, error) {
	if err := checkNonNegative(req.Price, req.Quantity, req.SoldUnits, req.Cost); err != nil {
		return nil, err
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("name must not be empty: %w", ErrValidation)
	}

	item, err := s.Repo.PatchItem(ctx, req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("item %d: %w", req.ID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, events.ItemEvent(events.ItemUpdated, item), item)
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id uint) error {
	err := s.Repo.DeleteItem(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return err
	}

	publish(ctx, s.Events, events.TopicItems, events.Key(id), events.ItemDeletedEvent(id))
	if s.Index != nil {
		ictx, cancel := detached(ctx)
		defer cancel()
		if err := s.Index.DeleteItem(ictx, id); err != nil {
			logging.FromContext(ctx).Error("unindex_item_error", "itemID", id, "error", err)
		}
	}
	return nil
}

// SellItem records a sale of qty units of the item called name. sold reports
// whether stock moved; an item whose status is not "available" is returned
// untouched with sold=false.
func (s *ItemService) SellItem(ctx context.Context, name string, qty int, soldBy string) (item *models.Item, sold bool, err error) {
	if qty < 1 {
		return nil, false, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}
	if name == "" {
		return nil, false, fmt.Errorf("item name must not be empty: %w", ErrValidation)
	}

	item, sold, err = s.Repo.SellItem(ctx, name, qty)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, fmt.Errorf("item %q: %w", name, ErrNotFound)
	case errors.Is(err, repo.ErrInsufficientStock):
		return nil, false, fmt.Errorf("cannot sell %d of %q: %w", qty, name, ErrNotAcceptable)
	case err != nil:
		return nil, false, err
	}

	if sold {
		s.afterWrite(ctx, events.SaleEvent(item, qty, soldBy), item)
	}
	return item, sold, nil
}

// Reindex mirrors every stored item into the search index. Rows written
// before the index was configured, or whose mirroring failed, are picked up
// here. Per-item failures are logged and skipped.
func (s *ItemService) Reindex(ctx context.Context) (int, error) {
	if s.Index == nil {
		return 0, nil
	}
	l := logging.FromContext(ctx).With("svc", "items.reindex")

	indexed := 0
	for offset := 0; ; offset += util.MaxLimit {
		items, err := s.Repo.ListItems(ctx, offset, util.MaxLimit)
		if err != nil {
			return indexed, err
		}
		for i := range items {
			if err := s.Index.IndexItem(ctx, &items[i]); err != nil {
				l.Error("index_item_error", "itemID", items[i].ID, "error", err)
				continue
			}
			indexed++
		}
		if len(items) < util.MaxLimit {
			return indexed, nil
		}
	}
}

func (s *ItemService) afterWrite(ctx context.Context, event map[string]any, item *models.Item) {
	publish(ctx, s.Events, events.TopicItems, events.Key(item.ID), event)
	if s.Index == nil {
		return
	}
	ictx, cancel := detached(ctx)
	defer cancel()
	if err := s.Index.IndexItem(ictx, item); err != nil {
		logging.FromContext(ctx).Error("index_item_error", "itemID", item.ID, "error", err)
	}
}

// parsePrice accepts digits with at most one dot.
func parsePrice(term string) (float64, bool) {
	if term == "" || strings.Count(term, ".") > 1 {
		return 0, false
	}
	digits := 0
	for _, r := range term {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
		default:
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(term, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func checkNonNegative(price *float64, quantity, soldUnits *int, cost *float64) error {
	switch {
	case price != nil && *price < 0:
		return fmt.Errorf("price cannot be negative: %w", ErrValidation)
	case quantity != nil && *quantity < 0:
		return fmt.Errorf("quantity cannot be negative: %w", ErrValidation)
	case soldUnits != nil && *soldUnits < 0:
		return fmt.Errorf("sold_units cannot be negative: %w", ErrValidation)
	case cost != nil && *cost < 0:
		return fmt.Errorf("cost cannot be negative: %w", ErrValidation)
	}
	return nil
}
