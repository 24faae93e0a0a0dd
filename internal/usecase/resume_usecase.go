package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/security"
	"go-resume-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

const (
	compressMaxDimension = 2000
	compressQuality      = 80
)

type resumeUsecase struct {
	resumeRepo     domain.ResumeRepository
	onboardingRepo domain.OnboardingRepository
	storageClient  *storage.Client
	parser         domain.ResumeParser
	validate       *validator.Validate
	maxUploadSize  int64
}

func NewResumeUsecase(
	resumeRepo domain.ResumeRepository,
	onboardingRepo domain.OnboardingRepository,
	storageClient *storage.Client,
	parser domain.ResumeParser,
	validate *validator.Validate,
	maxUploadSize int64,
) domain.ResumeUsecase {
	return &resumeUsecase{
		resumeRepo:     resumeRepo,
		onboardingRepo: onboardingRepo,
		storageClient:  storageClient,
		parser:         parser,
		validate:       validate,
		maxUploadSize:  maxUploadSize,
	}
}

func (u *resumeUsecase) GetMyResume(ctx context.Context, userID string) (*domain.Resume, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}

	resume, err := u.resumeRepo.GetBasisResume(ctx, userID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, apperror.NotFound("No resume found")
	}
	return resume, nil
}

func (u *resumeUsecase) UpdateMyResume(ctx context.Context, userID string, patch domain.ResumePatch) (*domain.Resume, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}

	existing, err := u.resumeRepo.GetBasisResume(ctx, userID)
	if err != nil {
		return nil, err
	}

	base := domain.NewEmptyResume()
	if existing != nil {
		base = existing.Data
	}

	merged := domain.MergeResume(base, patch)
	if err := u.validate.Struct(merged); err != nil {
		return nil, apperror.BadRequest("Resume contains invalid field values")
	}

	return u.resumeRepo.UpsertBasisResume(ctx, userID, merged, nil, nil)
}

func (u *resumeUsecase) UploadResume(ctx context.Context, userID string, upload domain.ResumeUpload) (*domain.Resume, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}

	if int64(len(upload.Data)) > u.maxUploadSize {
		return nil, apperror.BadRequest(fmt.Sprintf("File exceeds the maximum size of %d bytes", u.maxUploadSize))
	}
	if result := security.ValidateFile(upload.FileName, upload.Data, upload.ContentType); !result.Valid {
		return nil, apperror.BadRequest(result.Error)
	}

	data := upload.Data
	contentType := upload.ContentType
	objectName := upload.FileName
	ext := strings.ToLower(filepath.Ext(upload.FileName))
	if security.IsImageExtension(ext) {
		compressed, err := storage.CompressImage(data, compressMaxDimension, compressQuality)
		if err != nil {
			// An oversized but valid image is still acceptable as-is.
			slog.Warn("image compression failed, storing original", "file", upload.FileName, "error", err)
		} else {
			data = compressed
			contentType = "image/jpeg"
			objectName = strings.TrimSuffix(upload.FileName, ext) + ".jpg"
		}
	}

	var storedURL string
	if u.storageClient.Configured() {
		object := fmt.Sprintf("%s/%d_%s", userID, time.Now().Unix(), storage.SanitizeFilename(objectName))
		url, err := u.storageClient.Upload(ctx, object, data, contentType)
		if err != nil {
			return nil, apperror.Internal(fmt.Errorf("failed to store resume file: %w", err))
		}
		storedURL = url
	} else {
		slog.Warn("storage not configured, keeping upload unreferenced", "file", upload.FileName)
	}

	parsed, err := u.parser.Parse(ctx, upload, storedURL)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to parse resume file: %w", err))
	}

	existing, err := u.resumeRepo.GetBasisResume(ctx, userID)
	if err != nil {
		return nil, err
	}

	// A parse that extracted less than the stored document must not replace
	// it; keep the structured data and just attach the new source file.
	doc := parsed
	if existing != nil && !parsed.SubstantiallyComplete() {
		doc = existing.Data
		doc.Meta.Canonical = parsed.Meta.Canonical
		doc = doc.Touch()
	}

	var urlPtr *string
	if storedURL != "" {
		urlPtr = &storedURL
	}
	resume, err := u.resumeRepo.UpsertBasisResume(ctx, userID, doc, urlPtr, &upload.FileName)
	if err != nil {
		return nil, err
	}

	if err := u.onboardingRepo.SetCompleted(ctx, userID, true); err != nil {
		slog.Warn("failed to mark onboarding completed", "user_id", userID, "error", err)
	}

	return resume, nil
}
