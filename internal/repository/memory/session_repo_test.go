package memory_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/repository/memory"
	"go-resume-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	ctx := context.Background()

	session := &domain.InterviewSession{UserID: "user1", Section: domain.SectionBasics}
	require.NoError(t, repo.Create(ctx, session))
	assert.NotEmpty(t, session.ID)

	got, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "user1", got.UserID)
	assert.Equal(t, domain.SectionBasics, got.Section)

	got.Section = domain.SectionWork
	got.QuestionIndex = 2
	got.Responses = append(got.Responses, domain.InterviewResponse{Answer: "Acme"})
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SectionWork, updated.Section)
	assert.Equal(t, 2, updated.QuestionIndex)
	assert.Len(t, updated.Responses, 1)

	require.NoError(t, repo.Delete(ctx, session.ID))
	_, err = repo.Get(ctx, session.ID)
	assert.Error(t, err)
}

func TestSessionNotFound(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)

	_, err := repo.Get(context.Background(), "missing")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)

	err = repo.Update(context.Background(), &domain.InterviewSession{ID: "missing"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestSessionExpiry(t *testing.T) {
	repo := memory.NewSessionRepository(time.Millisecond)
	ctx := context.Background()

	session := &domain.InterviewSession{UserID: "user1"}
	require.NoError(t, repo.Create(ctx, session))

	time.Sleep(5 * time.Millisecond)

	_, err := repo.Get(ctx, session.ID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusGone, appErr.Code)
}

func TestSessionIsolation(t *testing.T) {
	repo := memory.NewSessionRepository(time.Hour)
	ctx := context.Background()

	session := &domain.InterviewSession{UserID: "user1"}
	require.NoError(t, repo.Create(ctx, session))

	first, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	// Mutating the returned copy must not leak into the store
	first.Responses = append(first.Responses, domain.InterviewResponse{Answer: "leak"})

	second, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, second.Responses)
}
