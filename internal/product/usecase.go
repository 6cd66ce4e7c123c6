package product

import (
	"context"

	"github.com/abinsights/analytics-service/internal/model"
	"github.com/abinsights/analytics-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context, skip, limit int) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
