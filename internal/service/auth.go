package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/sims/internal/events"
	"github.com/Skotchmaster/sims/internal/models"
	"github.com/Skotchmaster/sims/internal/repo"
	"github.com/Skotchmaster/sims/internal/transport"
	"github.com/Skotchmaster/sims/pkg/hash"
	"github.com/Skotchmaster/sims/pkg/logging"
	"github.com/Skotchmaster/sims/pkg/tokens"
)

type AuthService struct {
	Repo          *repo.GormRepo
	AccessSecret  []byte
	RefreshSecret []byte
	HashKey       []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Events        EventPublisher
}

func (s *AuthService) Signup(ctx context.Context, req transport.SignupRequest) (*transport.AuthUser, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", ErrValidation)
	}

	_, err := s.Repo.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, fmt.Errorf("email %s: %w", req.Email, ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash.HashPassword(s.HashKey, req.Password),
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	l.Info("user_created", "userID", user.ID)

	publish(ctx, s.Events, events.TopicUsers, events.Key(user.ID), events.UserEvent(user))
	return &transport.AuthUser{Name: user.Name, Email: user.Email}, nil
}

// Login looks the user up by name and issues a token pair for their email.
func (s *AuthService) Login(ctx context.Context, username, password string) (*transport.TokenPair, error) {
	user, err := s.Repo.GetUserByName(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %q: %w", username, ErrBadCredentials)
	}
	if err != nil {
		return nil, err
	}
	if !hash.CheckPassword(s.HashKey, user.Password, password) {
		return nil, fmt.Errorf("password mismatch for %q: %w", username, ErrBadCredentials)
	}
	return s.issue(user.Email)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*transport.TokenPair, error) {
	claims, err := tokens.RefreshClaimsFromToken(refreshToken, s.RefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("refresh token: %v: %w", err, ErrForbidden)
	}
	user, err := s.Repo.GetUserByEmail(ctx, claims.Subject)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", claims.Subject, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s.issue(user.Email)
}

// CurrentUser resolves a token subject to the stored user.
func (s *AuthService) CurrentUser(ctx context.Context, email string) (*transport.AuthUser, error) {
	user, err := s.Repo.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &transport.AuthUser{Name: user.Name, Email: user.Email}, nil
}

func (s *AuthService) issue(email string) (*transport.TokenPair, error) {
	now := time.Now()
	access, err := tokens.NewAccessToken(email, now.Add(s.AccessTTL), s.AccessSecret)
	if err != nil {
		return nil, err
	}
	refresh, err := tokens.NewRefreshToken(email, now.Add(s.RefreshTTL), s.RefreshSecret)
	if err != nil {
		return nil, err
	}
	return &transport.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
