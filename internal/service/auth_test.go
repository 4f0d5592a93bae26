package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Skotchmaster/sims/internal/events"
	"github.com/Skotchmaster/sims/internal/models"
	"github.com/Skotchmaster/sims/internal/transport"
	"github.com/Skotchmaster/sims/pkg/tokens"
)

func newAuthService(t *testing.T) (*AuthService, *fakePublisher) {
	t.Helper()
	pub := &fakePublisher{}
	return &AuthService{
		Repo:          newTestRepo(t),
		AccessSecret:  []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
		HashKey:       []byte("access-secret"),
		AccessTTL:     10 * time.Minute,
		RefreshTTL:    48 * time.Hour,
		Events:        pub,
	}, pub
}

var waleed = transport.SignupRequest{Name: "waleed", Email: "waleed@example.com", Password: "s3cret"}

func TestAuthService_Signup(t *testing.T) {
	s, pub := newAuthService(t)
	ctx := context.Background()

	user, err := s.Signup(ctx, waleed)
	require.NoError(t, err)
	assert.Equal(t, &transport.AuthUser{Name: "waleed", Email: "waleed@example.com"}, user)
	assert.Equal(t, []string{events.UserSignedUp}, pub.types())
	assert.Equal(t, events.TopicUsers, pub.events[0].topic)

	stored, err := s.Repo.GetUserByEmail(ctx, waleed.Email)
	require.NoError(t, err)
	assert.NotEqual(t, waleed.Password, stored.Password)

	_, err = s.Signup(ctx, waleed)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.Signup(ctx, transport.SignupRequest{Name: "x", Email: "", Password: "p"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_Login(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	_, err := s.Signup(ctx, waleed)
	require.NoError(t, err)

	_, err = s.Login(ctx, "waleed", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = s.Login(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = s.Login(ctx, "waleed@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrBadCredentials)

	pair, err := s.Login(ctx, "waleed", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	access, err := tokens.AccessClaimsFromToken(pair.AccessToken, s.AccessSecret)
	require.NoError(t, err)
	assert.Equal(t, waleed.Email, access.Subject)

	refresh, err := tokens.RefreshClaimsFromToken(pair.RefreshToken, s.RefreshSecret)
	require.NoError(t, err)
	assert.Equal(t, waleed.Email, refresh.Subject)
}

func TestAuthService_LoginBcryptHash(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("legacy"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, s.Repo.CreateUser(ctx, &models.User{Name: "old", Email: "old@example.com", Password: string(hashed)}))

	_, err = s.Login(ctx, "old", "legacy")
	require.NoError(t, err)
}

func TestAuthService_Refresh(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	_, err := s.Signup(ctx, waleed)
	require.NoError(t, err)
	pair, err := s.Login(ctx, "waleed", "s3cret")
	require.NoError(t, err)

	next, err := s.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	claims, err := tokens.AccessClaimsFromToken(next.AccessToken, s.AccessSecret)
	require.NoError(t, err)
	assert.Equal(t, waleed.Email, claims.Subject)

	_, err = s.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = s.Refresh(ctx, "garbage")
	assert.ErrorIs(t, err, ErrForbidden)

	orphan, err := tokens.NewRefreshToken("ghost@example.com", time.Now().Add(time.Hour), s.RefreshSecret)
	require.NoError(t, err)
	_, err = s.Refresh(ctx, orphan)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthService_CurrentUser(t *testing.T) {
	s, _ := newAuthService(t)
	ctx := context.Background()
	_, err := s.Signup(ctx, waleed)
	require.NoError(t, err)

	u, err := s.CurrentUser(ctx, waleed.Email)
	require.NoError(t, err)
	assert.Equal(t, "waleed", u.Name)

	_, err = s.CurrentUser(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
