// Package store holds the portal's short-lived state in Redis: booking drafts
// and login sessions. Both carry a TTL; an expired draft is the server-side
// version of the user navigating away mid-wizard.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hotel-portal/models"
)

var ErrDraftNotFound = errors.New("draft_not_found")

type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &DraftStore{client: client, ttl: ttl}
}

func draftKey(id string) string {
	return "draft:" + id
}

func (s *DraftStore) Save(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return s.client.Set(ctx, draftKey(draft.ID), data, s.ttl).Err()
}

func (s *DraftStore) Get(ctx context.Context, id string) (*models.BookingDraft, error) {
	data, err := s.client.Get(ctx, draftKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}
	return &draft, nil
}

func (s *DraftStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, draftKey(id)).Err()
}
