package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/abinsights/analytics-service/internal/apperrors"
	"github.com/abinsights/analytics-service/internal/model"
	"github.com/abinsights/analytics-service/pkg/database"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// Create assigns the next id as max(customer_id)+1 and inserts, both inside
// one transaction. The max+1 read is not serialized across connections; a
// concurrent create on the same table can collide on the primary key, which
// surfaces as a constraint violation.
func (r *PGRepository) Create(ctx context.Context, c *model.Customer) error {
	err := database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &c.CustomerID,
			`SELECT COALESCE(MAX(customer_id), 0) + 1 FROM customers`); err != nil {
			return err
		}
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO customers (customer_id, name, email)
			VALUES (:customer_id, :name, :email)
		`, c)
		return err
	})
	if database.IsConstraintViolation(err) {
		return apperrors.Constraint("customer violates a uniqueness constraint")
	}
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	err := r.DB.GetContext(ctx, &c, `SELECT * FROM customers WHERE customer_id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) FindAll(ctx context.Context, skip, limit int) ([]model.Customer, error) {
	customers := []model.Customer{}
	err := r.DB.SelectContext(ctx, &customers,
		`SELECT * FROM customers ORDER BY customer_id LIMIT $1 OFFSET $2`, limit, skip)
	return customers, err
}

func (r *PGRepository) Update(ctx context.Context, c *model.Customer) error {
	err := database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, `
			UPDATE customers
			SET name = :name, email = :email
			WHERE customer_id = :customer_id
		`, c)
		return err
	})
	if database.IsConstraintViolation(err) {
		return apperrors.Constraint("customer violates a uniqueness constraint")
	}
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM customers WHERE customer_id = $1`, id)
		return err
	})
}

func (r *PGRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT count(*) FROM customers WHERE email = $1 AND customer_id != $2`, email, excludeID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
