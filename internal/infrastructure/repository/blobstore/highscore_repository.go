package blobstore

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/frc-scores/internal/domain/highscore"
	"github.com/riskibarqy/frc-scores/internal/infrastructure/blob"
)

// HighScoreRepository stores one JSON document per season.
type HighScoreRepository struct {
	store blob.Store
}

func NewHighScoreRepository(store blob.Store) *HighScoreRepository {
	return &HighScoreRepository{store: store}
}

func seasonObject(year int) string {
	return fmt.Sprintf("highscores/%d.json", year)
}

func (r *HighScoreRepository) Save(ctx context.Context, year int, records []highscore.Record) error {
	if records == nil {
		records = []highscore.Record{}
	}
	content, err := sonic.MarshalString(records)
	if err != nil {
		return fmt.Errorf("encode high scores year=%d: %w", year, err)
	}
	if err := r.store.Write(ctx, seasonObject(year), content); err != nil {
		return fmt.Errorf("save high scores year=%d: %w", year, err)
	}
	return nil
}

func (r *HighScoreRepository) List(ctx context.Context, year int) ([]highscore.Record, bool, error) {
	content, ok, err := r.store.Read(ctx, seasonObject(year))
	if err != nil {
		return nil, false, fmt.Errorf("load high scores year=%d: %w", year, err)
	}
	if !ok {
		return nil, false, nil
	}

	var records []highscore.Record
	if err := sonic.UnmarshalString(content, &records); err != nil {
		return nil, false, fmt.Errorf("decode high scores year=%d: %w", year, err)
	}
	return records, true, nil
}
