package blob

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidName = errors.New("blob name is required")

// Store persists named text documents. Names are slash separated paths such
// as "highscores/2024.json".
type Store interface {
	Read(ctx context.Context, name string) (string, bool, error)
	Write(ctx context.Context, name, content string) error
	List(ctx context.Context, prefix string) ([]string, error)
}

func cleanName(name string) (string, error) {
	name = strings.Trim(strings.TrimSpace(name), "/")
	if name == "" {
		return "", ErrInvalidName
	}
	return name, nil
}
