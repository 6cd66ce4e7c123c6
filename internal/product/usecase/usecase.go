package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/abinsights/analytics-service/internal/apperrors"
	"github.com/abinsights/analytics-service/internal/model"
	"github.com/abinsights/analytics-service/internal/product"
	"github.com/abinsights/analytics-service/internal/product/dto"
)

type productUseCase struct {
	repo   product.Repository
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if input.ProductName == nil {
		return nil, apperrors.Validation("product_name is required")
	}
	if input.Category == nil {
		return nil, apperrors.Validation("category is required")
	}
	if input.ReleaseDate == nil {
		return nil, apperrors.Validation("release_date is required")
	}

	p := &model.Product{
		ProductName: *input.ProductName,
		Category:    *input.Category,
		Description: input.Description,
		LogoURL:     input.LogoURL,
		ReleaseDate: *input.ReleaseDate,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Debug("product created", zap.Int64("product_id", p.ProductID))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Product", id)
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, skip, limit int) ([]model.Product, error) {
	return uc.repo.FindAll(ctx, skip, limit)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("Product", id)
	}

	if input.ProductName != nil {
		p.ProductName = *input.ProductName
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	if input.LogoURL != nil {
		p.LogoURL = input.LogoURL
	}
	if input.ReleaseDate != nil {
		p.ReleaseDate = *input.ReleaseDate
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperrors.NotFound("Product", id)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Debug("product deleted with dependents", zap.Int64("product_id", id))
	return nil
}
