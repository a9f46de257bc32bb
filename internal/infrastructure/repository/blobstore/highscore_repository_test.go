package blobstore

import (
	"context"
	"testing"

	"github.com/riskibarqy/frc-scores/internal/domain/highscore"
	"github.com/riskibarqy/frc-scores/internal/domain/match"
	"github.com/riskibarqy/frc-scores/internal/infrastructure/blob"
	"github.com/stretchr/testify/require"
)

func TestHighScoreRepository_SaveThenList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := blob.NewMemoryStore()
	repo := NewHighScoreRepository(store)

	records := []highscore.Record{{
		Key:       highscore.RecordKey(2024, highscore.CategoryOverall, highscore.LevelQual, ""),
		Year:      2024,
		Category:  highscore.CategoryOverall,
		Level:     highscore.LevelQual,
		EventCode: "CAFR",
		Match:     match.Match{Number: 12, Level: match.LevelQualification},
		Alliance:  match.Red,
		Score:     95,
	}}
	require.NoError(t, repo.Save(ctx, 2024, records))

	names, err := store.List(ctx, "highscores/")
	require.NoError(t, err)
	require.Equal(t, []string{"highscores/2024.json"}, names)

	got, ok, err := repo.List(ctx, 2024)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	require.Equal(t, "2024overallqual", got[0].Key)
	require.Equal(t, match.Red, got[0].Alliance)
	require.Equal(t, 12, got[0].Match.Number)
}

func TestHighScoreRepository_MissingSeason(t *testing.T) {
	t.Parallel()

	repo := NewHighScoreRepository(blob.NewMemoryStore())
	got, ok, err := repo.List(context.Background(), 2019)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, got)
}

func TestHighScoreRepository_SaveEmptyWritesArray(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := blob.NewMemoryStore()
	require.NoError(t, NewHighScoreRepository(store).Save(ctx, 2020, nil))

	content, ok, err := store.Read(ctx, "highscores/2020.json")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[]", content)
}
