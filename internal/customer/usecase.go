package customer

import (
	"context"

	"github.com/abinsights/analytics-service/internal/customer/dto"
	"github.com/abinsights/analytics-service/internal/model"
)

type UseCase interface {
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*model.Customer, error)
	ListCustomers(ctx context.Context, skip, limit int) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, input *dto.UpdateCustomerInput) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}
