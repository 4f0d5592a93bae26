package transport

import "github.com/Skotchmaster/sims/internal/models"

type CreateItemRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Quantity    int         `json:"quantity"`
	Date        models.Date `json:"date"`
	Status      string      `json:"status"`
	SoldUnits   int         `json:"sold_units"`
	Cost        float64     `json:"cost"`
}

// PatchItemRequest lists the fields an update may touch; nil means unchanged.
type PatchItemRequest struct {
	ID          uint         `json:"id"`
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price"`
	Quantity    *int         `json:"quantity"`
	Date        *models.Date `json:"date"`
	Status      *string      `json:"status"`
	SoldUnits   *int         `json:"sold_units"`
	Cost        *float64     `json:"cost"`
}

// Apply merges every supplied field into item.
func (p PatchItemRequest) Apply(item *models.Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Date != nil {
		item.Date = *p.Date
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
	if p.SoldUnits != nil {
		item.SoldUnits = *p.SoldUnits
	}
	if p.Cost != nil {
		item.Cost = *p.Cost
	}
}

type SignupRequest struct {
	Name     string `json:"name"     form:"name"`
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginRequest is the OAuth2 password grant form.
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `form:"refresh_token" json:"refresh_token"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthUser is the public profile of a user.
type AuthUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
