package landingpage

import (
	"context"

	"github.com/abinsights/analytics-service/internal/landingpage/dto"
	"github.com/abinsights/analytics-service/internal/model"
)

type UseCase interface {
	CreateLandingPage(ctx context.Context, input *dto.CreateLandingPageInput) (*model.LandingPage, error)
	GetLandingPage(ctx context.Context, id int64) (*model.LandingPage, error)
	ListLandingPages(ctx context.Context, skip, limit int) ([]model.LandingPage, error)
	UpdateLandingPage(ctx context.Context, id int64, input *dto.UpdateLandingPageInput) (*model.LandingPage, error)
	DeleteLandingPage(ctx context.Context, id int64) error
}
