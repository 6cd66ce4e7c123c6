package result

import (
	"context"

	"github.com/abinsights/analytics-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, res *model.Result) error
	FindByID(ctx context.Context, id int64) (*model.Result, error)
	FindAll(ctx context.Context, skip, limit int) ([]model.Result, error)
	Update(ctx context.Context, res *model.Result) error
	Delete(ctx context.Context, id int64) error

	TestExists(ctx context.Context, testID int64) (bool, error)
}
