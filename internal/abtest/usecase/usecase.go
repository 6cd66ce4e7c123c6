package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/abinsights/analytics-service/internal/abtest"
	"github.com/abinsights/analytics-service/internal/abtest/dto"
	"github.com/abinsights/analytics-service/internal/apperrors"
	"github.com/abinsights/analytics-service/internal/model"
)

type abTestUseCase struct {
	repo   abtest.Repository
	logger *zap.Logger
}

func NewABTestUseCase(repo abtest.Repository, log *zap.Logger) abtest.UseCase {
	return &abTestUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *abTestUseCase) CreateABTest(ctx context.Context, input *dto.CreateABTestInput) (*model.ABTest, error) {
	if input.TestName == nil {
		return nil, apperrors.Validation("test_name is required")
	}
	if input.StartDate == nil {
		return nil, apperrors.Validation("start_date is required")
	}
	if input.EndDate == nil {
		return nil, apperrors.Validation("end_date is required")
	}
	if input.LandingPageID == nil {
		return nil, apperrors.Validation("landing_page_id is required")
	}
	if input.ProductID == nil {
		return nil, apperrors.Validation("product_id is required")
	}

	if err := uc.checkRefs(ctx, *input.ProductID, *input.LandingPageID); err != nil {
		return nil, err
	}

	t := &model.ABTest{
		TestName:      *input.TestName,
		StartDate:     *input.StartDate,
		EndDate:       *input.EndDate,
		LandingPageID: *input.LandingPageID,
		ProductID:     *input.ProductID,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Debug("ab test created", zap.Int64("test_id", t.TestID))
	return t, nil
}

func (uc *abTestUseCase) GetABTest(ctx context.Context, id int64) (*model.ABTest, error) {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperrors.NotFound("ABTest", id)
	}
	return t, nil
}

func (uc *abTestUseCase) ListABTests(ctx context.Context, skip, limit int) ([]model.ABTest, error) {
	return uc.repo.FindAll(ctx, skip, limit)
}

func (uc *abTestUseCase) UpdateABTest(ctx context.Context, id int64, input *dto.UpdateABTestInput) (*model.ABTest, error) {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperrors.NotFound("ABTest", id)
	}

	if input.TestName != nil {
		t.TestName = *input.TestName
	}
	if input.StartDate != nil {
		t.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		t.EndDate = *input.EndDate
	}
	if input.ProductID != nil {
		exists, err := uc.repo.ProductExists(ctx, *input.ProductID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.Constraint("referenced product does not exist")
		}
		t.ProductID = *input.ProductID
	}
	if input.LandingPageID != nil {
		exists, err := uc.repo.LandingPageExists(ctx, *input.LandingPageID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.Constraint("referenced landing page does not exist")
		}
		t.LandingPageID = *input.LandingPageID
	}

	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *abTestUseCase) DeleteABTest(ctx context.Context, id int64) error {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return apperrors.NotFound("ABTest", id)
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *abTestUseCase) checkRefs(ctx context.Context, productID, landingPageID int64) error {
	exists, err := uc.repo.ProductExists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.Constraint("referenced product does not exist")
	}
	exists, err = uc.repo.LandingPageExists(ctx, landingPageID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.Constraint("referenced landing page does not exist")
	}
	return nil
}
