package landingpage

import (
	"context"

	"github.com/abinsights/analytics-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, lp *model.LandingPage) error
	FindByID(ctx context.Context, id int64) (*model.LandingPage, error)
	FindAll(ctx context.Context, skip, limit int) ([]model.LandingPage, error)
	Update(ctx context.Context, lp *model.LandingPage) error

	// Delete removes the page, its tests, and those tests' results in one
	// transaction.
	Delete(ctx context.Context, id int64) error

	// ProductExists validates the owning foreign key ahead of a write.
	ProductExists(ctx context.Context, productID int64) (bool, error)
}
