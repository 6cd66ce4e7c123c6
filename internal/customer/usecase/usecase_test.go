package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abinsights/analytics-service/internal/apperrors"
	"github.com/abinsights/analytics-service/internal/customer"
	"github.com/abinsights/analytics-service/internal/customer/dto"
	"github.com/abinsights/analytics-service/internal/customer/repository"
	"github.com/abinsights/analytics-service/internal/testutil"
)

func strPtr(s string) *string { return &s }

func setup(t *testing.T) customer.UseCase {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewCustomerUseCase(repository.NewPGRepository(db), testutil.Logger())
}

func TestCreateCustomerRoundTrip(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	created, err := uc.CreateCustomer(ctx, &dto.CreateCustomerInput{
		Name:  strPtr("Alice Smith"),
		Email: strPtr("alice@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.CustomerID)

	got, err := uc.GetCustomer(ctx, created.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateCustomerMissingFields(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	_, err := uc.CreateCustomer(ctx, &dto.CreateCustomerInput{Email: strPtr("a@b.c")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = uc.CreateCustomer(ctx, &dto.CreateCustomerInput{Name: strPtr("Alice")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	_, err := uc.CreateCustomer(ctx, &dto.CreateCustomerInput{
		Name:  strPtr("Alice"),
		Email: strPtr("alice@example.com"),
	})
	require.NoError(t, err)

	_, err = uc.CreateCustomer(ctx, &dto.CreateCustomerInput{
		Name:  strPtr("Another Alice"),
		Email: strPtr("alice@example.com"),
	})
	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
}

func TestUpdateCustomerPartial(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	created, err := uc.CreateCustomer(ctx, &dto.CreateCustomerInput{
		Name:  strPtr("Alice"),
		Email: strPtr("alice@example.com"),
	})
	require.NoError(t, err)

	// Empty partial update must leave the record untouched.
	unchanged, err := uc.UpdateCustomer(ctx, created.CustomerID, &dto.UpdateCustomerInput{})
	require.NoError(t, err)
	assert.Equal(t, created, unchanged)

	// Updating one field leaves the other alone.
	updated, err := uc.UpdateCustomer(ctx, created.CustomerID, &dto.UpdateCustomerInput{
		Name: strPtr("Alice B. Smith"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice B. Smith", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	uc := setup(t)

	_, err := uc.UpdateCustomer(context.Background(), 42, &dto.UpdateCustomerInput{Name: strPtr("X")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteCustomerThenGet(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	created, err := uc.CreateCustomer(ctx, &dto.CreateCustomerInput{
		Name:  strPtr("Alice"),
		Email: strPtr("alice@example.com"),
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteCustomer(ctx, created.CustomerID))

	_, err = uc.GetCustomer(ctx, created.CustomerID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = uc.DeleteCustomer(ctx, created.CustomerID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListCustomersEmpty(t *testing.T) {
	uc := setup(t)

	customers, err := uc.ListCustomers(context.Background(), 0, 100)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestListCustomersPagination(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	emails := []string{"a@x.com", "b@x.com", "c@x.com"}
	for i, email := range emails {
		_, err := uc.CreateCustomer(ctx, &dto.CreateCustomerInput{
			Name:  strPtr("Customer"),
			Email: strPtr(email),
		})
		require.NoError(t, err, "create %d", i)
	}

	page, err := uc.ListCustomers(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(2), page[0].CustomerID)

	// Out-of-range offset yields an empty page, never an error.
	empty, err := uc.ListCustomers(ctx, 100, 100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// Two concurrent creates with distinct emails. On the embedded backend the
// single write connection serializes them, so both succeed with distinct
// ids; this documents the serialized outcome of the max+1 policy.
func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make(chan int64, 2)
	errs := make(chan error, 2)

	for _, email := range []string{"first@x.com", "second@x.com"} {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			c, err := uc.CreateCustomer(ctx, &dto.CreateCustomerInput{
				Name:  strPtr("Concurrent"),
				Email: strPtr(email),
			})
			if err != nil {
				errs <- err
				return
			}
			ids <- c.CustomerID
		}(email)
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent create failed: %v", err)
	}

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, 2)
}
