package blob

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/frc-scores/internal/platform/querybuilder"
)

const blobTable = "blob_objects"

// PostgresStore keeps documents in the blob_objects table.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type blobInsertModel struct {
	Name        string `db:"name"`
	Content     string `db:"content"`
	ContentHash string `db:"content_hash"`
}

func (s *PostgresStore) Read(ctx context.Context, name string) (string, bool, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", false, err
	}

	query, args, err := readQuery(name)
	if err != nil {
		return "", false, fmt.Errorf("build read blob query: %w", err)
	}

	var content string
	if err := s.db.GetContext(ctx, &content, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read blob name=%s: %w", name, err)
	}
	return content, true, nil
}

func (s *PostgresStore) Write(ctx context.Context, name, content string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}

	query, args, err := writeQuery(name, content)
	if err != nil {
		return fmt.Errorf("build write blob query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("write blob name=%s: %w", name, err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := qb.Select("name").
		From(blobTable).
		Where(qb.HasPrefix("name", prefix), qb.IsNull("deleted_at")).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list blob query: %w", err)
	}

	var names []string
	if err := s.db.SelectContext(ctx, &names, query, args...); err != nil {
		return nil, fmt.Errorf("list blobs prefix=%s: %w", prefix, err)
	}
	return names, nil
}

func readQuery(name string) (string, []any, error) {
	return qb.Select("content").
		From(blobTable).
		Where(qb.Eq("name", name), qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
}

// writeQuery upserts and skips the row rewrite when the content is unchanged.
func writeQuery(name, content string) (string, []any, error) {
	sum := sha256.Sum256([]byte(content))
	return qb.InsertModel(blobTable, blobInsertModel{
		Name:        name,
		Content:     content,
		ContentHash: hex.EncodeToString(sum[:]),
	}, `ON CONFLICT (name) DO UPDATE SET
    content = EXCLUDED.content,
    content_hash = EXCLUDED.content_hash,
    updated_at = NOW(),
    deleted_at = NULL
WHERE blob_objects.content_hash IS DISTINCT FROM EXCLUDED.content_hash OR blob_objects.deleted_at IS NOT NULL`)
}
