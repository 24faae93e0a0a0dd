package usecase

import (
	"context"

	"go-resume-backend/internal/domain"
)

type onboardingUsecase struct {
	onboardingRepo domain.OnboardingRepository
}

func NewOnboardingUsecase(onboardingRepo domain.OnboardingRepository) domain.OnboardingUsecase {
	return &onboardingUsecase{onboardingRepo: onboardingRepo}
}

func (u *onboardingUsecase) GetStatus(ctx context.Context, userID string) (*domain.OnboardingStatus, error) {
	if err := requireSelf(ctx, userID); err != nil {
		return nil, err
	}
	return u.onboardingRepo.GetStatus(ctx, userID)
}

func (u *onboardingUsecase) Complete(ctx context.Context, userID string) error {
	if err := requireSelf(ctx, userID); err != nil {
		return err
	}
	return u.onboardingRepo.SetCompleted(ctx, userID, true)
}
