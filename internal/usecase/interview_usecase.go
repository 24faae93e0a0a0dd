package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
)

const (
	greetingMessage   = "Hi! I'm here to help you create your resume. Let's start with some basic information."
	addAnotherMessage = "Great! Let's add another one."
	completionMessage = "Perfect! We've gathered all the information for your resume. Let's save it!"
)

type interviewUsecase struct {
	sessionRepo    domain.InterviewSessionRepository
	resumeRepo     domain.ResumeRepository
	onboardingRepo domain.OnboardingRepository
}

func NewInterviewUsecase(
	sessionRepo domain.InterviewSessionRepository,
	resumeRepo domain.ResumeRepository,
	onboardingRepo domain.OnboardingRepository,
) domain.InterviewUsecase {
	return &interviewUsecase{
		sessionRepo:    sessionRepo,
		resumeRepo:     resumeRepo,
		onboardingRepo: onboardingRepo,
	}
}

func (u *interviewUsecase) StartInterview(ctx context.Context, userID string) (*domain.InterviewStep, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}

	first, _ := domain.NextSection("")
	session := &domain.InterviewSession{
		UserID:    userID,
		Section:   first,
		Responses: []domain.InterviewResponse{},
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	entry := domain.EntryQuestionsFor(first)
	return &domain.InterviewStep{
		SessionID: session.ID,
		Messages:  []string{greetingMessage, entry[0].Prompt},
	}, nil
}

func (u *interviewUsecase) SubmitAnswer(ctx context.Context, userID, sessionID, answer string) (*domain.InterviewStep, error) {
	session, err := u.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, apperror.BadRequest("Interview is already completed")
	}

	entry := domain.EntryQuestionsFor(session.Section)

	var messages []string
	advance := false

	if session.QuestionIndex < len(entry) {
		q := entry[session.QuestionIndex]
		session.Responses = append(session.Responses, domain.InterviewResponse{
			Question: q.Prompt,
			Answer:   answer,
			Section:  session.Section,
			Field:    q.Field,
		})
		session.QuestionIndex++

		switch {
		case session.QuestionIndex < len(entry):
			messages = []string{entry[session.QuestionIndex].Prompt}
		case domain.Repeatable(session.Section):
			// Entry questions exhausted; the add-another confirmation is now
			// pending (QuestionIndex stays at the entry-question count).
			confirmation, _ := confirmationQuestion(session.Section)
			messages = []string{confirmation.Prompt}
		default:
			advance = true
		}
	} else {
		// The pending question is the add-another confirmation.
		confirmation, ok := confirmationQuestion(session.Section)
		if !ok {
			return nil, apperror.Internal(fmt.Errorf("section %q has no pending question at index %d", session.Section, session.QuestionIndex))
		}
		session.Responses = append(session.Responses, domain.InterviewResponse{
			Question: confirmation.Prompt,
			Answer:   answer,
			Section:  session.Section,
			Field:    domain.FieldAddAnother,
		})

		if strings.Contains(strings.ToLower(answer), "yes") {
			session.QuestionIndex = 0
			messages = []string{addAnotherMessage, entry[0].Prompt}
		} else {
			advance = true
		}
	}

	if advance {
		next, ok := domain.NextSection(session.Section)
		if !ok {
			return u.completeInterview(ctx, session)
		}
		session.Section = next
		session.QuestionIndex = 0
		nextEntry := domain.EntryQuestionsFor(next)
		messages = []string{sectionIntro(next), nextEntry[0].Prompt}
	}

	if err := u.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return &domain.InterviewStep{
		SessionID: session.ID,
		Messages:  messages,
	}, nil
}

// completeInterview assembles the document from everything collected, saves
// it as the user's basis resume, flags onboarding and discards the session.
func (u *interviewUsecase) completeInterview(ctx context.Context, session *domain.InterviewSession) (*domain.InterviewStep, error) {
	doc := BuildResumeFromInterview(session.Responses)

	if _, err := u.resumeRepo.UpsertBasisResume(ctx, session.UserID, doc, nil, nil); err != nil {
		return nil, err
	}

	// Losing the onboarding flag is recoverable (it can be re-derived from the
	// stored resume), so a failure here must not lose the interview result.
	if err := u.onboardingRepo.SetCompleted(ctx, session.UserID, true); err != nil {
		slog.Warn("failed to mark onboarding completed", "user_id", session.UserID, "error", err)
	}

	if err := u.sessionRepo.Delete(ctx, session.ID); err != nil {
		slog.Warn("failed to discard completed interview session", "session_id", session.ID, "error", err)
	}

	return &domain.InterviewStep{
		SessionID: session.ID,
		Messages:  []string{completionMessage},
		Done:      true,
		Resume:    &doc,
	}, nil
}

func (u *interviewUsecase) GetSession(ctx context.Context, userID, sessionID string) (*domain.InterviewSession, error) {
	return u.ownedSession(ctx, userID, sessionID)
}

func (u *interviewUsecase) AbandonInterview(ctx context.Context, userID, sessionID string) error {
	if _, err := u.ownedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	return u.sessionRepo.Delete(ctx, sessionID)
}

// ownedSession loads the session and enforces that both the authenticated
// user and the requested user match its owner.
func (u *interviewUsecase) ownedSession(ctx context.Context, userID, sessionID string) (*domain.InterviewSession, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}
	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, apperror.Forbidden("You can only access your own interview sessions")
	}
	return session, nil
}

func sectionIntro(section domain.Section) string {
	return fmt.Sprintf("Great! Let's talk about your %s.", strings.ToLower(section.DisplayName()))
}

func confirmationQuestion(section domain.Section) (domain.CatalogQuestion, bool) {
	for _, q := range domain.QuestionsFor(section) {
		if q.Field == domain.FieldAddAnother {
			return q, true
		}
	}
	return domain.CatalogQuestion{}, false
}
