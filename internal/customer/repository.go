package customer

import (
	"context"

	"github.com/abinsights/analytics-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	FindAll(ctx context.Context, skip, limit int) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id int64) error

	// EmailTaken checks the unique-email constraint ahead of a write.
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
}
