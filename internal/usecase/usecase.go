// Package usecase implements the application's business rules on top of the
// domain interfaces.
package usecase

import (
	"context"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
)

// requireSelf ensures the authenticated user in the context is the user the
// operation targets. Every user-scoped usecase method calls this before
// touching data.
func requireSelf(ctx context.Context, userID string) error {
	authUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || authUserID == "" {
		return apperror.Unauthorized("Authentication required")
	}
	if authUserID != userID {
		return apperror.Forbidden("You can only access your own data")
	}
	return nil
}
