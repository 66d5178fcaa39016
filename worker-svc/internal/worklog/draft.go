package worklog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const draftTTL = 7 * 24 * time.Hour

// DraftStore keeps one unsent work-log entry per user so a half-written log
// survives the app being closed.
type DraftStore struct {
	client *redis.Client
}

func NewDraftStore(client *redis.Client) *DraftStore {
	return &DraftStore{client: client}
}

func draftKey(user string) string {
	return "worklog:draft:" + user
}

func (s *DraftStore) Save(ctx context.Context, user string, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(user), data, draftTTL).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Load returns the user's draft, or (nil, nil) when there is none.
func (s *DraftStore) Load(ctx context.Context, user string) (*Entry, error) {
	data, err := s.client.Get(ctx, draftKey(user)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &entry, nil
}

func (s *DraftStore) Clear(ctx context.Context, user string) error {
	if err := s.client.Del(ctx, draftKey(user)).Err(); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
