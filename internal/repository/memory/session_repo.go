// Package memory provides in-process storage for interview sessions.
// Sessions are conversational scratch state; losing them on restart only
// means the user restarts the interview, so they never touch Postgres.
package memory

import (
	"context"
	"sync"
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"

	"github.com/google/uuid"
)

type sessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.InterviewSession
	ttl      time.Duration
}

func NewSessionRepository(ttl time.Duration) domain.InterviewSessionRepository {
	return &sessionRepo{
		sessions: make(map[string]*domain.InterviewSession),
		ttl:      ttl,
	}
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.InterviewSession) error {
	now := time.Now().UTC()
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	session.CreatedAt = now
	session.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictExpiredLocked(now)
	r.sessions[session.ID] = cloneSession(session)

	return nil
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*domain.InterviewSession, error) {
	r.mu.RLock()
	session, ok := r.sessions[sessionID]
	r.mu.RUnlock()

	if !ok {
		return nil, apperror.NotFound("Interview session not found")
	}
	if r.expired(session, time.Now().UTC()) {
		r.mu.Lock()
		delete(r.sessions, sessionID)
		r.mu.Unlock()
		return nil, apperror.Gone("Interview session has expired")
	}

	return cloneSession(session), nil
}

func (r *sessionRepo) Update(ctx context.Context, session *domain.InterviewSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return apperror.NotFound("Interview session not found")
	}

	updated := cloneSession(session)
	updated.UpdatedAt = time.Now().UTC()
	r.sessions[session.ID] = updated
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

func (r *sessionRepo) expired(session *domain.InterviewSession, now time.Time) bool {
	return r.ttl > 0 && now.Sub(session.UpdatedAt) > r.ttl
}

func (r *sessionRepo) evictExpiredLocked(now time.Time) {
	for id, session := range r.sessions {
		if r.expired(session, now) {
			delete(r.sessions, id)
		}
	}
}

// cloneSession copies the session so callers never share the stored
// responses slice with the map's copy.
func cloneSession(s *domain.InterviewSession) *domain.InterviewSession {
	out := *s
	out.Responses = make([]domain.InterviewResponse, len(s.Responses))
	copy(out.Responses, s.Responses)
	return &out
}
