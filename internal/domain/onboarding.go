package domain

import (
	"context"
	"time"
)

// OnboardingStatus tracks whether a user has produced their first resume,
// either through the interview or an upload.
type OnboardingStatus struct {
	UserID          string     `json:"user_id"`
	ResumeCompleted bool       `json:"resume_completed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// ============================================================================
// Repository Interface
// ============================================================================

type OnboardingRepository interface {
	GetStatus(ctx context.Context, userID string) (*OnboardingStatus, error)

	// SetCompleted marks (or clears) the onboarding flag. Idempotent.
	SetCompleted(ctx context.Context, userID string, completed bool) error
}

// ============================================================================
// Usecase Interface
// ============================================================================

type OnboardingUsecase interface {
	GetStatus(ctx context.Context, userID string) (*OnboardingStatus, error)
	Complete(ctx context.Context, userID string) error
}
