package abtest

import (
	"context"

	"github.com/abinsights/analytics-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, t *model.ABTest) error
	FindByID(ctx context.Context, id int64) (*model.ABTest, error)
	FindAll(ctx context.Context, skip, limit int) ([]model.ABTest, error)
	Update(ctx context.Context, t *model.ABTest) error

	// Delete removes the test and its results in one transaction.
	Delete(ctx context.Context, id int64) error

	ProductExists(ctx context.Context, productID int64) (bool, error)
	LandingPageExists(ctx context.Context, landingPageID int64) (bool, error)
}
