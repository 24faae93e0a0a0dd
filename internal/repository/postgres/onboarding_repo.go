package postgres

import (
	"context"
	"fmt"
	"go-resume-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type onboardingRepo struct {
	db *pgxpool.Pool
}

func NewOnboardingRepository(db *pgxpool.Pool) domain.OnboardingRepository {
	return &onboardingRepo{db: db}
}

func (r *onboardingRepo) GetStatus(ctx context.Context, userID string) (*domain.OnboardingStatus, error) {
	query := `
		SELECT user_id, resume_completed, completed_at
		FROM onboarding_status
		WHERE user_id = $1
	`

	var status domain.OnboardingStatus
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&status.UserID, &status.ResumeCompleted, &status.CompletedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// No row means onboarding has not started yet.
			return &domain.OnboardingStatus{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get onboarding status: %w", err)
	}

	return &status, nil
}

func (r *onboardingRepo) SetCompleted(ctx context.Context, userID string, completed bool) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO onboarding_status (user_id, resume_completed, completed_at)
		VALUES ($1, $2, CASE WHEN $2 THEN NOW() END)
		ON CONFLICT (user_id)
		DO UPDATE SET resume_completed = $2,
		              completed_at = CASE
		                  WHEN $2 THEN COALESCE(onboarding_status.completed_at, NOW())
		              END
	`, userID, completed)
	if err != nil {
		return fmt.Errorf("failed to set onboarding completed: %w", err)
	}
	return nil
}
