package app

import (
	"context"
	"fmt"

	"github.com/PayTrain/NASA-Space-Explorer/internal/apod"
)

type FeedClient interface {
	FetchLatest(ctx context.Context, days int) ([]apod.Item, error)
}

type SnapshotStore interface {
	ReplaceSnapshot(ctx context.Context, items []apod.Item) error
	ListSnapshot(ctx context.Context, limit int) ([]apod.Item, error)
}

// Service coordinates the APOD client with the local snapshot cache. A nil
// store disables caching and turns Service into a plain fetch pass-through.
type Service struct {
	client FeedClient
	store  SnapshotStore
}

func NewService(client FeedClient, store SnapshotStore) *Service {
	return &Service{client: client, store: store}
}

// FetchLatest pulls the freshest items from the feed and replaces the cached
// snapshot with them. The returned slice keeps the feed's delivery order.
// A cache write failure does not void the fetch: the items come back anyway,
// alongside the error, so callers can show them and surface the cache problem
// as a warning.
func (s *Service) FetchLatest(ctx context.Context, days int) ([]apod.Item, error) {
	items, err := s.client.FetchLatest(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("fetch picture feed: %w", err)
	}

	if s.store != nil {
		if err := s.store.ReplaceSnapshot(ctx, items); err != nil {
			return items, fmt.Errorf("cache snapshot: %w", err)
		}
	}

	return items, nil
}

// ListCached returns the last persisted snapshot, or nothing when caching
// is disabled.
func (s *Service) ListCached(ctx context.Context, limit int) ([]apod.Item, error) {
	if s.store == nil {
		return nil, nil
	}
	items, err := s.store.ListSnapshot(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load snapshot from cache: %w", err)
	}
	return items, nil
}
