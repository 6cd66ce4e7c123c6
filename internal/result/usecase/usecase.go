package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/abinsights/analytics-service/internal/apperrors"
	"github.com/abinsights/analytics-service/internal/model"
	"github.com/abinsights/analytics-service/internal/result"
	"github.com/abinsights/analytics-service/internal/result/dto"
)

type resultUseCase struct {
	repo   result.Repository
	logger *zap.Logger
}

func NewResultUseCase(repo result.Repository, log *zap.Logger) result.UseCase {
	return &resultUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *resultUseCase) CreateResult(ctx context.Context, input *dto.CreateResultInput) (*model.Result, error) {
	if input.ClickThroughRate == nil {
		return nil, apperrors.Validation("click_through_rate is required")
	}
	if input.ConversionRate == nil {
		return nil, apperrors.Validation("conversion_rate is required")
	}
	if input.BounceRate == nil {
		return nil, apperrors.Validation("bounce_rate is required")
	}
	if input.TestID == nil {
		return nil, apperrors.Validation("test_id is required")
	}

	if err := uc.checkTest(ctx, *input.TestID); err != nil {
		return nil, err
	}

	res := &model.Result{
		ClickThroughRate: *input.ClickThroughRate,
		ConversionRate:   *input.ConversionRate,
		BounceRate:       *input.BounceRate,
		TestID:           *input.TestID,
	}
	if err := uc.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	uc.logger.Debug("result created", zap.Int64("results_id", res.ResultsID))
	return res, nil
}

func (uc *resultUseCase) GetResult(ctx context.Context, id int64) (*model.Result, error) {
	res, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, apperrors.NotFound("Result", id)
	}
	return res, nil
}

func (uc *resultUseCase) ListResults(ctx context.Context, skip, limit int) ([]model.Result, error) {
	return uc.repo.FindAll(ctx, skip, limit)
}

func (uc *resultUseCase) UpdateResult(ctx context.Context, id int64, input *dto.UpdateResultInput) (*model.Result, error) {
	res, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, apperrors.NotFound("Result", id)
	}

	if input.ClickThroughRate != nil {
		res.ClickThroughRate = *input.ClickThroughRate
	}
	if input.ConversionRate != nil {
		res.ConversionRate = *input.ConversionRate
	}
	if input.BounceRate != nil {
		res.BounceRate = *input.BounceRate
	}
	if input.TestID != nil {
		if err := uc.checkTest(ctx, *input.TestID); err != nil {
			return nil, err
		}
		res.TestID = *input.TestID
	}

	if err := uc.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *resultUseCase) DeleteResult(ctx context.Context, id int64) error {
	res, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if res == nil {
		return apperrors.NotFound("Result", id)
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *resultUseCase) checkTest(ctx context.Context, testID int64) error {
	exists, err := uc.repo.TestExists(ctx, testID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.Constraint("referenced ab test does not exist")
	}
	return nil
}
