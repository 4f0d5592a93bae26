package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/sims/internal/models"
	"github.com/Skotchmaster/sims/internal/transport"
)

func (r *GormRepo) CreateItem(ctx context.Context, item *models.Item) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) ListItems(ctx context.Context, offset, limit int) ([]models.Item, error) {
	var items []models.Item
	if err := r.DB.WithContext(ctx).Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

func (r *GormRepo) SearchByName(ctx context.Context, term string, limit int) ([]models.Item, error) {
	return r.findItems(ctx, limit, "LOWER(name) LIKE ?", likePattern(term))
}

func (r *GormRepo) SearchByDescription(ctx context.Context, term string, limit int) ([]models.Item, error) {
	return r.findItems(ctx, limit, "LOWER(description) LIKE ?", likePattern(term))
}

func (r *GormRepo) SearchByNameOrDescription(ctx context.Context, term string, limit int) ([]models.Item, error) {
	p := likePattern(term)
	return r.findItems(ctx, limit, "LOWER(name) LIKE ? OR LOWER(description) LIKE ?", p, p)
}

func (r *GormRepo) SearchByPrice(ctx context.Context, cmp models.Comparison, price float64, limit int) ([]models.Item, error) {
	return r.findItems(ctx, limit, "price "+cmp.SQL()+" ?", price)
}

func (r *GormRepo) findItems(ctx context.Context, limit int, query string, args ...any) ([]models.Item, error) {
	var items []models.Item
	if err := r.DB.WithContext(ctx).Where(query, args...).Order("id ASC").Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) PatchItem(ctx context.Context, req transport.PatchItemRequest) (*models.Item, error) {
	var item models.Item
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, req.ID).Error; err != nil {
			return err
		}
		req.Apply(&item)
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) DeleteItem(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Item{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SellItem moves qty units of the first item called name from stock to
// sold_units. sold is false when the item is not available for sale; the row
// is then left untouched.
func (r *GormRepo) SellItem(ctx context.Context, name string, qty int) (item *models.Item, sold bool, err error) {
	var it models.Item
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("name = ?", name).Order("id ASC").First(&it).Error; err != nil {
			return err
		}
		if it.Quantity < qty {
			return ErrInsufficientStock
		}
		if !strings.EqualFold(it.Status, "available") || it.Quantity <= 0 {
			return nil
		}

		res := tx.Model(&models.Item{}).
			Where("id = ? AND quantity >= ?", it.ID, qty).
			Updates(map[string]any{
				"quantity":   gorm.Expr("quantity - ?", qty),
				"sold_units": gorm.Expr("sold_units + ?", qty),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}
		sold = true
		return tx.First(&it, it.ID).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &it, sold, nil
}

// SoldItems returns items with at least one unit sold whose entry date lies
// in [from, to]; nil bounds are open.
func (r *GormRepo) SoldItems(ctx context.Context, from, to *models.Date) ([]models.Item, error) {
	q := r.DB.WithContext(ctx).Where("sold_units > ?", 0)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	var items []models.Item
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
