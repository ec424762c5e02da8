package ports

import (
	"context"

	"github.com/bnema/verbtrainer/internal/domain"
)

// SessionStore keeps one practice session and at most one outstanding challenge
// per user. Implementations must be safe for concurrent use and must not share
// slices with callers.
type SessionStore interface {
	Get(ctx context.Context, id domain.UserID) (domain.PracticeSession, error)
	GetOrCreate(ctx context.Context, id domain.UserID) (domain.PracticeSession, error)
	Reset(ctx context.Context, id domain.UserID) (domain.PracticeSession, error)
	Save(ctx context.Context, session domain.PracticeSession) error
	Delete(ctx context.Context, id domain.UserID) error

	GetChallenge(ctx context.Context, id domain.UserID) (domain.Challenge, error)
	PutChallenge(ctx context.Context, id domain.UserID, challenge domain.Challenge) error
	ClearChallenge(ctx context.Context, id domain.UserID) error
}
