package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abinsights/analytics-service/internal/model"
)

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")
	return NewPGRepository(db), mock
}

func TestCreateAssignsMaxPlusOne(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(customer_id\), 0\) \+ 1 FROM customers`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(4)))
	mock.ExpectExec(`INSERT INTO customers`).
		WithArgs(int64(4), "Dana", "dana@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c := &model.Customer{Name: "Dana", Email: "dana@example.com"}
	err := repo.Create(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, int64(4), c.CustomerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackOnInsertFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(customer_id\), 0\) \+ 1 FROM customers`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(1)))
	mock.ExpectExec(`INSERT INTO customers`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.Customer{Name: "Dana", Email: "dana@example.com"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDAbsentReturnsNil(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM customers WHERE customer_id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"customer_id", "name", "email"}))

	c, err := repo.FindByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailTaken(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM customers WHERE email = \$1 AND customer_id != \$2`).
		WithArgs("dana@example.com", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	taken, err := repo.EmailTaken(context.Background(), "dana@example.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRunsInTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM customers WHERE customer_id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
