package repo

import (
	"context"

	"github.com/Skotchmaster/sims/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).Order("id ASC").First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("name = ?", name).Order("id ASC").First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
