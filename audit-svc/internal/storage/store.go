package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sitesupply/audit-svc/internal/domain"
)

// Store keeps completion counters in redis: a daily ranking per event kind
// and an all-time ranking per project.
type Store struct {
	rdb *redis.Client
	ctx context.Context
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
		ctx: context.Background(),
	}
}

func dailyKey(day, kind string) string {
	return fmt.Sprintf("audit:daily:%s:%s", day, kind)
}

func (s *Store) RecordCompletion(kind, itemName, project string) error {
	today := time.Now().Format("2006-01-02")

	member := itemName
	if member == "" {
		member = "(整筆)"
	}

	key := dailyKey(today, kind)
	if err := s.rdb.ZIncrBy(s.ctx, key, 1, member).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, key, 7*24*time.Hour)

	if project != "" {
		if err := s.rdb.ZIncrBy(s.ctx, "audit:project", 1, project).Err(); err != nil {
			return err
		}
	}
	return nil
}

// TopCompleted ranks the day's completions for one kind, most frequent first.
func (s *Store) TopCompleted(day, kind string, limit int) ([]domain.CompletedItem, error) {
	results, err := s.rdb.ZRevRangeWithScores(s.ctx, dailyKey(day, kind), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.CompletedItem, 0, len(results))
	for _, z := range results {
		items = append(items, domain.CompletedItem{
			Name:  z.Member.(string),
			Count: z.Score,
		})
	}
	return items, nil
}

// ProjectTotals ranks projects by all-time completed work.
func (s *Store) ProjectTotals(limit int) ([]domain.CompletedItem, error) {
	results, err := s.rdb.ZRevRangeWithScores(s.ctx, "audit:project", 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.CompletedItem, 0, len(results))
	for _, z := range results {
		items = append(items, domain.CompletedItem{
			Name:  z.Member.(string),
			Count: z.Score,
		})
	}
	return items, nil
}
