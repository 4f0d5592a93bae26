package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/sims/internal/models"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type GormRepo struct {
	DB *gorm.DB
}

// Migrate creates the items and users tables and adds missing columns.
func (r *GormRepo) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(&models.Item{}, &models.User{})
}

func (r *GormRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
