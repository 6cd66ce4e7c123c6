package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/abinsights/analytics-service/internal/apperrors"
	"github.com/abinsights/analytics-service/internal/landingpage"
	"github.com/abinsights/analytics-service/internal/landingpage/dto"
	"github.com/abinsights/analytics-service/internal/model"
)

type landingPageUseCase struct {
	repo   landingpage.Repository
	logger *zap.Logger
}

func NewLandingPageUseCase(repo landingpage.Repository, log *zap.Logger) landingpage.UseCase {
	return &landingPageUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *landingPageUseCase) CreateLandingPage(ctx context.Context, input *dto.CreateLandingPageInput) (*model.LandingPage, error) {
	if input.VariantType == nil {
		return nil, apperrors.Validation("variant_type is required")
	}
	if input.PageURL == nil {
		return nil, apperrors.Validation("page_url is required")
	}
	if input.ProductID == nil {
		return nil, apperrors.Validation("product_id is required")
	}

	if err := uc.checkProduct(ctx, *input.ProductID); err != nil {
		return nil, err
	}

	lp := &model.LandingPage{
		VariantType: *input.VariantType,
		PageURL:     *input.PageURL,
		ProductID:   *input.ProductID,
	}
	if err := uc.repo.Create(ctx, lp); err != nil {
		return nil, err
	}

	uc.logger.Debug("landing page created",
		zap.Int64("landing_page_id", lp.LandingPageID),
		zap.Int64("product_id", lp.ProductID),
	)
	return lp, nil
}

func (uc *landingPageUseCase) GetLandingPage(ctx context.Context, id int64) (*model.LandingPage, error) {
	lp, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lp == nil {
		return nil, apperrors.NotFound("LandingPage", id)
	}
	return lp, nil
}

func (uc *landingPageUseCase) ListLandingPages(ctx context.Context, skip, limit int) ([]model.LandingPage, error) {
	return uc.repo.FindAll(ctx, skip, limit)
}

func (uc *landingPageUseCase) UpdateLandingPage(ctx context.Context, id int64, input *dto.UpdateLandingPageInput) (*model.LandingPage, error) {
	lp, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lp == nil {
		return nil, apperrors.NotFound("LandingPage", id)
	}

	if input.VariantType != nil {
		lp.VariantType = *input.VariantType
	}
	if input.PageURL != nil {
		lp.PageURL = *input.PageURL
	}
	if input.ProductID != nil {
		if err := uc.checkProduct(ctx, *input.ProductID); err != nil {
			return nil, err
		}
		lp.ProductID = *input.ProductID
	}

	if err := uc.repo.Update(ctx, lp); err != nil {
		return nil, err
	}
	return lp, nil
}

func (uc *landingPageUseCase) DeleteLandingPage(ctx context.Context, id int64) error {
	lp, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if lp == nil {
		return apperrors.NotFound("LandingPage", id)
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *landingPageUseCase) checkProduct(ctx context.Context, productID int64) error {
	exists, err := uc.repo.ProductExists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.Constraint("referenced product does not exist")
	}
	return nil
}
