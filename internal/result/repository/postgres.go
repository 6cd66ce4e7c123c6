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

func (r *PGRepository) Create(ctx context.Context, res *model.Result) error {
	err := database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &res.ResultsID,
			`SELECT COALESCE(MAX(results_id), 0) + 1 FROM results`); err != nil {
			return err
		}
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO results (results_id, click_through_rate, conversion_rate, bounce_rate, test_id)
			VALUES (:results_id, :click_through_rate, :conversion_rate, :bounce_rate, :test_id)
		`, res)
		return err
	})
	if database.IsConstraintViolation(err) {
		return apperrors.Constraint("result violates a constraint")
	}
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Result, error) {
	var res model.Result
	err := r.DB.GetContext(ctx, &res, `SELECT * FROM results WHERE results_id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *PGRepository) FindAll(ctx context.Context, skip, limit int) ([]model.Result, error) {
	results := []model.Result{}
	err := r.DB.SelectContext(ctx, &results,
		`SELECT * FROM results ORDER BY results_id LIMIT $1 OFFSET $2`, limit, skip)
	return results, err
}

func (r *PGRepository) Update(ctx context.Context, res *model.Result) error {
	err := database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, `
			UPDATE results
			SET click_through_rate = :click_through_rate,
			    conversion_rate = :conversion_rate,
			    bounce_rate = :bounce_rate,
			    test_id = :test_id
			WHERE results_id = :results_id
		`, res)
		return err
	})
	if database.IsConstraintViolation(err) {
		return apperrors.Constraint("result violates a constraint")
	}
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM results WHERE results_id = $1`, id)
		return err
	})
}

func (r *PGRepository) TestExists(ctx context.Context, testID int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT count(*) FROM ab_testing WHERE test_id = $1`, testID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
