package memory

import (
	"context"
	"sync"

	"github.com/bnema/verbtrainer/internal/domain"
	"github.com/bnema/verbtrainer/internal/ports"
)

// Store keeps sessions and outstanding challenges in process memory. Nothing
// survives a restart.
type Store struct {
	mu         sync.RWMutex
	sessions   map[domain.UserID]domain.PracticeSession
	challenges map[domain.UserID]domain.Challenge
	clock      ports.Clock
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore(clock ports.Clock) *Store {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Store{
		sessions:   make(map[domain.UserID]domain.PracticeSession),
		challenges: make(map[domain.UserID]domain.Challenge),
		clock:      clock,
	}
}

func (s *Store) Get(ctx context.Context, id domain.UserID) (domain.PracticeSession, error) {
	if err := ctx.Err(); err != nil {
		return domain.PracticeSession{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return domain.PracticeSession{}, domain.ErrSessionNotFound
	}

	return session.Clone(), nil
}

func (s *Store) GetOrCreate(ctx context.Context, id domain.UserID) (domain.PracticeSession, error) {
	if err := ctx.Err(); err != nil {
		return domain.PracticeSession{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		session = domain.NewPracticeSession(id, s.clock.Now())
		s.sessions[id] = session
	}

	return session.Clone(), nil
}

func (s *Store) Reset(ctx context.Context, id domain.UserID) (domain.PracticeSession, error) {
	if err := ctx.Err(); err != nil {
		return domain.PracticeSession{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	session, ok := s.sessions[id]
	if !ok {
		session = domain.NewPracticeSession(id, now)
	}
	session.ClearSelection()
	session.Active = false
	session.UpdatedAt = now
	s.sessions[id] = session

	return session.Clone(), nil
}

func (s *Store) Save(ctx context.Context, session domain.PracticeSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	session = session.Clone()
	session.NormalizeSelection()

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[session.UserID]; ok && session.CreatedAt.IsZero() {
		session.CreatedAt = existing.CreatedAt
	}
	s.sessions[session.UserID] = session

	return nil
}

func (s *Store) Delete(ctx context.Context, id domain.UserID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	delete(s.challenges, id)

	return nil
}

func (s *Store) GetChallenge(ctx context.Context, id domain.UserID) (domain.Challenge, error) {
	if err := ctx.Err(); err != nil {
		return domain.Challenge{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	challenge, ok := s.challenges[id]
	if !ok {
		return domain.Challenge{}, domain.ErrNoChallenge
	}

	return challenge.Clone(), nil
}

func (s *Store) PutChallenge(ctx context.Context, id domain.UserID, challenge domain.Challenge) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.challenges[id] = challenge.Clone()

	return nil
}

func (s *Store) ClearChallenge(ctx context.Context, id domain.UserID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.challenges, id)

	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
