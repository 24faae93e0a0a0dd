package usecase_test

import (
	"testing"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/parser"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newResumeFixture(t *testing.T) (domain.ResumeUsecase, *MockResumeRepo, *MockOnboardingRepo) {
	t.Helper()
	resumeRepo := new(MockResumeRepo)
	onboardingRepo := new(MockOnboardingRepo)
	uc := usecase.NewResumeUsecase(
		resumeRepo,
		onboardingRepo,
		storage.NewClient("", "", ""), // unconfigured, uploads stay unreferenced
		parser.NewUploadParser(),
		validator.New(),
		1<<20,
	)
	return uc, resumeRepo, onboardingRepo
}

func TestGetMyResume(t *testing.T) {
	t.Run("Should fail when Context UserID does not match Argument UserID", func(t *testing.T) {
		uc, _, _ := newResumeFixture(t)
		_, err := uc.GetMyResume(userCtx("user1"), "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only access your own")
	})

	t.Run("Missing resume maps to not found", func(t *testing.T) {
		uc, resumeRepo, _ := newResumeFixture(t)
		resumeRepo.On("GetBasisResume", mock.Anything, "user1").Return(nil, nil)

		_, err := uc.GetMyResume(userCtx("user1"), "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "No resume found")
	})

	t.Run("Returns the stored resume", func(t *testing.T) {
		uc, resumeRepo, _ := newResumeFixture(t)
		stored := &domain.Resume{UserID: "user1"}
		resumeRepo.On("GetBasisResume", mock.Anything, "user1").Return(stored, nil)

		resume, err := uc.GetMyResume(userCtx("user1"), "user1")
		require.NoError(t, err)
		assert.Equal(t, stored, resume)
	})
}

func TestUpdateMyResume(t *testing.T) {
	t.Run("Patch merges over the stored document", func(t *testing.T) {
		uc, resumeRepo, _ := newResumeFixture(t)

		existingDoc := domain.NewEmptyResume()
		existingDoc.Basics.Name = "Jane Doe"
		resumeRepo.On("GetBasisResume", mock.Anything, "user1").
			Return(&domain.Resume{UserID: "user1", Data: existingDoc}, nil)

		var savedDoc domain.ResumeDocument
		resumeRepo.On("UpsertBasisResume", mock.Anything, "user1", mock.AnythingOfType("domain.ResumeDocument"), (*string)(nil), (*string)(nil)).
			Run(func(args mock.Arguments) {
				savedDoc = args.Get(2).(domain.ResumeDocument)
			}).
			Return(&domain.Resume{UserID: "user1"}, nil)

		skills := []domain.Skill{{Name: "Go"}}
		_, err := uc.UpdateMyResume(userCtx("user1"), "user1", domain.ResumePatch{Skills: &skills})
		require.NoError(t, err)

		assert.Equal(t, "Jane Doe", savedDoc.Basics.Name, "untouched sections survive")
		assert.Equal(t, skills, savedDoc.Skills)
	})

	t.Run("A first update starts from an empty document", func(t *testing.T) {
		uc, resumeRepo, _ := newResumeFixture(t)
		resumeRepo.On("GetBasisResume", mock.Anything, "user1").Return(nil, nil)
		resumeRepo.On("UpsertBasisResume", mock.Anything, "user1", mock.AnythingOfType("domain.ResumeDocument"), (*string)(nil), (*string)(nil)).
			Return(&domain.Resume{UserID: "user1"}, nil)

		basics := domain.Basics{Name: "Jane Doe", Profiles: []domain.Profile{}}
		_, err := uc.UpdateMyResume(userCtx("user1"), "user1", domain.ResumePatch{Basics: &basics})
		assert.NoError(t, err)
	})

	t.Run("Invalid field values are rejected", func(t *testing.T) {
		uc, resumeRepo, _ := newResumeFixture(t)
		resumeRepo.On("GetBasisResume", mock.Anything, "user1").Return(nil, nil)

		basics := domain.Basics{Email: "not-an-email", Profiles: []domain.Profile{}}
		_, err := uc.UpdateMyResume(userCtx("user1"), "user1", domain.ResumePatch{Basics: &basics})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid field values")
	})
}

func TestUploadResume(t *testing.T) {
	t.Run("Disallowed extensions are rejected", func(t *testing.T) {
		uc, _, _ := newResumeFixture(t)

		_, err := uc.UploadResume(userCtx("user1"), "user1", domain.ResumeUpload{
			FileName:    "resume.exe",
			ContentType: "application/octet-stream",
			Data:        []byte("MZ"),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed")
	})

	t.Run("Spoofed content is rejected", func(t *testing.T) {
		uc, _, _ := newResumeFixture(t)

		_, err := uc.UploadResume(userCtx("user1"), "user1", domain.ResumeUpload{
			FileName:    "resume.pdf",
			ContentType: "application/pdf",
			Data:        []byte("plain text, not a pdf"),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not match extension")
	})

	t.Run("Oversized files are rejected", func(t *testing.T) {
		uc, _, _ := newResumeFixture(t)

		_, err := uc.UploadResume(userCtx("user1"), "user1", domain.ResumeUpload{
			FileName:    "resume.txt",
			ContentType: "text/plain",
			Data:        make([]byte, 2<<20),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "maximum size")
	})

	t.Run("Upload keeps an existing structured document", func(t *testing.T) {
		uc, resumeRepo, onboardingRepo := newResumeFixture(t)

		existingDoc := domain.NewEmptyResume()
		existingDoc.Basics.Name = "Jane Doe"
		existingDoc.Work = []domain.Work{{Name: "Acme"}}
		resumeRepo.On("GetBasisResume", mock.Anything, "user1").
			Return(&domain.Resume{UserID: "user1", Data: existingDoc}, nil)

		fileName := "resume.txt"
		var savedDoc domain.ResumeDocument
		resumeRepo.On("UpsertBasisResume", mock.Anything, "user1", mock.AnythingOfType("domain.ResumeDocument"), (*string)(nil), &fileName).
			Run(func(args mock.Arguments) {
				savedDoc = args.Get(2).(domain.ResumeDocument)
			}).
			Return(&domain.Resume{UserID: "user1"}, nil)
		onboardingRepo.On("SetCompleted", mock.Anything, "user1", true).Return(nil)

		_, err := uc.UploadResume(userCtx("user1"), "user1", domain.ResumeUpload{
			FileName:    fileName,
			ContentType: "text/plain",
			Data:        []byte("Jane Doe\nEngineer"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Jane Doe", savedDoc.Basics.Name, "interview-built data survives the upload")
		resumeRepo.AssertExpectations(t)
		onboardingRepo.AssertExpectations(t)
	})

	t.Run("First upload stores the parsed document", func(t *testing.T) {
		uc, resumeRepo, onboardingRepo := newResumeFixture(t)
		resumeRepo.On("GetBasisResume", mock.Anything, "user1").Return(nil, nil)
		resumeRepo.On("UpsertBasisResume", mock.Anything, "user1", mock.AnythingOfType("domain.ResumeDocument"), (*string)(nil), mock.AnythingOfType("*string")).
			Return(&domain.Resume{UserID: "user1"}, nil)
		onboardingRepo.On("SetCompleted", mock.Anything, "user1", true).Return(nil)

		_, err := uc.UploadResume(userCtx("user1"), "user1", domain.ResumeUpload{
			FileName:    "resume.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.4 fake"),
		})
		assert.NoError(t, err)
	})
}

func TestOnboardingUsecase(t *testing.T) {
	t.Run("Status passes through for the owner", func(t *testing.T) {
		repo := new(MockOnboardingRepo)
		uc := usecase.NewOnboardingUsecase(repo)
		repo.On("GetStatus", mock.Anything, "user1").
			Return(&domain.OnboardingStatus{UserID: "user1", ResumeCompleted: true}, nil)

		status, err := uc.GetStatus(userCtx("user1"), "user1")
		require.NoError(t, err)
		assert.True(t, status.ResumeCompleted)
	})

	t.Run("Should fail for another user's status", func(t *testing.T) {
		uc := usecase.NewOnboardingUsecase(new(MockOnboardingRepo))
		_, err := uc.GetStatus(userCtx("user1"), "user2")
		assert.Error(t, err)
	})

	t.Run("Complete sets the flag", func(t *testing.T) {
		repo := new(MockOnboardingRepo)
		uc := usecase.NewOnboardingUsecase(repo)
		repo.On("SetCompleted", mock.Anything, "user1", true).Return(nil)

		require.NoError(t, uc.Complete(userCtx("user1"), "user1"))
		repo.AssertExpectations(t)
	})
}
