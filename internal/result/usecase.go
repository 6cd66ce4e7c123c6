package result

import (
	"context"

	"github.com/abinsights/analytics-service/internal/model"
	"github.com/abinsights/analytics-service/internal/result/dto"
)

type UseCase interface {
	CreateResult(ctx context.Context, input *dto.CreateResultInput) (*model.Result, error)
	GetResult(ctx context.Context, id int64) (*model.Result, error)
	ListResults(ctx context.Context, skip, limit int) ([]model.Result, error)
	UpdateResult(ctx context.Context, id int64, input *dto.UpdateResultInput) (*model.Result, error)
	DeleteResult(ctx context.Context, id int64) error
}
