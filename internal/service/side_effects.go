package service

import (
	"context"
	"time"

	"github.com/Skotchmaster/sims/internal/models"
	"github.com/Skotchmaster/sims/pkg/logging"
)

const sideEffectTimeout = 5 * time.Second

type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

type ItemIndexer interface {
	IndexItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, id uint) error
}

// ItemSearcher is implemented by indexers that can also answer queries.
type ItemSearcher interface {
	SearchItems(ctx context.Context, query string, size int) ([]models.Item, error)
}

// detached keeps the request logger but drops the request deadline, so a
// client hanging up does not cancel work that runs after the commit.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	base := logging.IntoContext(context.Background(), logging.FromContext(ctx))
	return context.WithTimeout(base, sideEffectTimeout)
}

func publish(ctx context.Context, p EventPublisher, topic, key string, event any) {
	if p == nil {
		return
	}
	ctx, cancel := detached(ctx)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("publish_event_error", "topic", topic, "key", key, "error", err)
	}
}
