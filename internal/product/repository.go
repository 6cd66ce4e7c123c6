package product

import (
	"context"

	"github.com/abinsights/analytics-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context, skip, limit int) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error

	// Delete removes the product and every dependent row (its landing
	// pages, its tests, and those tests' results) in one transaction.
	Delete(ctx context.Context, id int64) error
}
