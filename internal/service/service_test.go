package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/sims/internal/models"
	"github.com/Skotchmaster/sims/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	r := &repo.GormRepo{DB: db}
	require.NoError(t, r.Migrate(context.Background()))
	return r
}

type publishedEvent struct {
	topic string
	key   string
	event map[string]any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (f *fakePublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ev, _ := event.(map[string]any)
	f.events = append(f.events, publishedEvent{topic: topic, key: key, event: ev})
	return f.err
}

func (f *fakePublisher) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.event["type"].(string))
	}
	return out
}

type fakeIndexer struct {
	mu      sync.Mutex
	docs    map[uint]models.Item
	deleted []uint
}

func newFakeIndexer() *fakeIndexer {
	return &fakeIndexer{docs: map[uint]models.Item{}}
}

func (f *fakeIndexer) IndexItem(_ context.Context, item *models.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[item.ID] = *item
	return nil
}

func (f *fakeIndexer) DeleteItem(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.docs, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSearcher struct {
	*fakeIndexer
	hits []models.Item
	err  error
}

func (f *fakeSearcher) SearchItems(context.Context, string, int) ([]models.Item, error) {
	return f.hits, f.err
}

type failingIndexer struct{}

func (failingIndexer) IndexItem(context.Context, *models.Item) error {
	return errors.New("index unavailable")
}

func (failingIndexer) DeleteItem(context.Context, uint) error {
	return errors.New("index unavailable")
}

var entryDate = models.NewDate(2023, time.April, 28)
