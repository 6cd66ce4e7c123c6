package abtest

import (
	"context"

	"github.com/abinsights/analytics-service/internal/abtest/dto"
	"github.com/abinsights/analytics-service/internal/model"
)

type UseCase interface {
	CreateABTest(ctx context.Context, input *dto.CreateABTestInput) (*model.ABTest, error)
	GetABTest(ctx context.Context, id int64) (*model.ABTest, error)
	ListABTests(ctx context.Context, skip, limit int) ([]model.ABTest, error)
	UpdateABTest(ctx context.Context, id int64, input *dto.UpdateABTestInput) (*model.ABTest, error)
	DeleteABTest(ctx context.Context, id int64) error
}
