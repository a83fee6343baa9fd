package store

import (
	"context"
	"errors"

	practicesession "github.com/wordboard/backend/internal/domain/practice_session"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store persists session state between requests.
type Store interface {
	SaveSession(ctx context.Context, snap practicesession.Snapshot) error
	GetSession(ctx context.Context, id string) (practicesession.Snapshot, error)
	DeleteSession(ctx context.Context, id string) error
}
