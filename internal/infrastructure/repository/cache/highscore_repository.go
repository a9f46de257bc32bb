package cache

import (
	"context"
	"strconv"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/frc-scores/internal/domain/highscore"
	basecache "github.com/riskibarqy/frc-scores/internal/platform/cache"
)

// absentSeason is cached for seasons that were never computed.
const absentSeason = "null"

type HighScoreRepository struct {
	next  highscore.Repository
	cache *basecache.Store
	ttl   time.Duration
}

func NewHighScoreRepository(next highscore.Repository, cache *basecache.Store, ttl time.Duration) *HighScoreRepository {
	return &HighScoreRepository{next: next, cache: cache, ttl: ttl}
}

func highScoreKey(year int) string {
	return "highscores:" + strconv.Itoa(year)
}

func (r *HighScoreRepository) Save(ctx context.Context, year int, records []highscore.Record) error {
	if err := r.next.Save(ctx, year, records); err != nil {
		return err
	}
	r.cache.Delete(ctx, highScoreKey(year))
	return nil
}

func (r *HighScoreRepository) List(ctx context.Context, year int) ([]highscore.Record, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, highScoreKey(year), r.ttl, func(ctx context.Context) (string, error) {
		items, exists, err := r.next.List(ctx, year)
		if err != nil {
			return "", err
		}
		if !exists {
			return absentSeason, nil
		}
		if items == nil {
			items = []highscore.Record{}
		}
		return sonic.MarshalString(items)
	})
	if err != nil {
		return nil, false, err
	}
	if v == absentSeason {
		return nil, false, nil
	}

	var items []highscore.Record
	if err := sonic.UnmarshalString(v, &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}
