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

func (r *PGRepository) Create(ctx context.Context, t *model.ABTest) error {
	err := database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &t.TestID,
			`SELECT COALESCE(MAX(test_id), 0) + 1 FROM ab_testing`); err != nil {
			return err
		}
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO ab_testing (test_id, test_name, start_date, end_date, landing_page_id, product_id)
			VALUES (:test_id, :test_name, :start_date, :end_date, :landing_page_id, :product_id)
		`, t)
		return err
	})
	if database.IsConstraintViolation(err) {
		return apperrors.Constraint("ab test violates a constraint")
	}
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.ABTest, error) {
	var t model.ABTest
	err := r.DB.GetContext(ctx, &t, `SELECT * FROM ab_testing WHERE test_id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *PGRepository) FindAll(ctx context.Context, skip, limit int) ([]model.ABTest, error) {
	tests := []model.ABTest{}
	err := r.DB.SelectContext(ctx, &tests,
		`SELECT * FROM ab_testing ORDER BY test_id LIMIT $1 OFFSET $2`, limit, skip)
	return tests, err
}

func (r *PGRepository) Update(ctx context.Context, t *model.ABTest) error {
	err := database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, `
			UPDATE ab_testing
			SET test_name = :test_name,
			    start_date = :start_date,
			    end_date = :end_date,
			    landing_page_id = :landing_page_id,
			    product_id = :product_id
			WHERE test_id = :test_id
		`, t)
		return err
	})
	if database.IsConstraintViolation(err) {
		return apperrors.Constraint("ab test violates a constraint")
	}
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM results WHERE test_id = $1`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM ab_testing WHERE test_id = $1`, id)
		return err
	})
}

func (r *PGRepository) ProductExists(ctx context.Context, productID int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT count(*) FROM products WHERE product_id = $1`, productID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PGRepository) LandingPageExists(ctx context.Context, landingPageID int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT count(*) FROM landing_pages WHERE landing_page_id = $1`, landingPageID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
