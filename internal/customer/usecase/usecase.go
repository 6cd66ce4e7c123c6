package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/abinsights/analytics-service/internal/apperrors"
	"github.com/abinsights/analytics-service/internal/customer"
	"github.com/abinsights/analytics-service/internal/customer/dto"
	"github.com/abinsights/analytics-service/internal/model"
)

type customerUseCase struct {
	repo   customer.Repository
	logger *zap.Logger
}

func NewCustomerUseCase(repo customer.Repository, log *zap.Logger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	if input.Name == nil {
		return nil, apperrors.Validation("name is required")
	}
	if input.Email == nil {
		return nil, apperrors.Validation("email is required")
	}

	taken, err := uc.repo.EmailTaken(ctx, *input.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Constraint("email already registered")
	}

	c := &model.Customer{
		Name:  *input.Name,
		Email: *input.Email,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Debug("customer created", zap.Int64("customer_id", c.CustomerID))
	return c, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("Customer", id)
	}
	return c, nil
}

func (uc *customerUseCase) ListCustomers(ctx context.Context, skip, limit int) ([]model.Customer, error) {
	return uc.repo.FindAll(ctx, skip, limit)
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, id int64, input *dto.UpdateCustomerInput) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("Customer", id)
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Email != nil {
		taken, err := uc.repo.EmailTaken(ctx, *input.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.Constraint("email already registered")
		}
		c.Email = *input.Email
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id int64) error {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return apperrors.NotFound("Customer", id)
	}
	return uc.repo.Delete(ctx, id)
}
