package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"go-resume-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) GetBasisResume(ctx context.Context, userID string) (*domain.Resume, error) {
	query := `
		SELECT id, user_id, resume_data, original_file_url, original_file_name,
		       is_basis_resume, created_at, updated_at
		FROM resumes
		WHERE user_id = $1 AND is_basis_resume = TRUE
	`

	var res domain.Resume
	var rawDoc []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&res.ID, &res.UserID, &rawDoc, &res.OriginalFileURL, &res.OriginalFileName,
		&res.IsBasisResume, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get basis resume: %w", err)
	}

	if len(rawDoc) > 0 {
		if err := json.Unmarshal(rawDoc, &res.Data); err != nil {
			return nil, fmt.Errorf("failed to decode resume document: %w", err)
		}
	}

	return &res, nil
}

func (r *resumeRepo) UpsertBasisResume(ctx context.Context, userID string, doc domain.ResumeDocument, originalFileURL, originalFileName *string) (*domain.Resume, error) {
	rawDoc, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume document: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if not committed

	var exists bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM resumes WHERE user_id = $1 AND is_basis_resume = TRUE)
	`, userID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check resume existence: %w", err)
	}

	skillNames := pq.Array(doc.SkillNames())

	if !exists {
		_, err = tx.Exec(ctx, `
			INSERT INTO resumes (
				id, user_id, resume_data, original_file_url, original_file_name,
				is_basis_resume, skill_names, created_at, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, TRUE, $6, NOW(), NOW())
		`, uuid.NewString(), userID, rawDoc, originalFileURL, originalFileName, skillNames)
		if err != nil {
			return nil, fmt.Errorf("failed to insert resume: %w", err)
		}
	} else {
		// Original file fields are owned by the upload path; a nil value
		// retains whatever is stored (interview saves must not clear them).
		_, err = tx.Exec(ctx, `
			UPDATE resumes
			SET resume_data = $2,
			    original_file_url = COALESCE($3, original_file_url),
			    original_file_name = COALESCE($4, original_file_name),
			    skill_names = $5,
			    updated_at = NOW()
			WHERE user_id = $1 AND is_basis_resume = TRUE
		`, userID, rawDoc, originalFileURL, originalFileName, skillNames)
		if err != nil {
			return nil, fmt.Errorf("failed to update resume: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetBasisResume(ctx, userID)
}
