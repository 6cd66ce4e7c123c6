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

func (r *PGRepository) Create(ctx context.Context, lp *model.LandingPage) error {
	err := database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &lp.LandingPageID,
			`SELECT COALESCE(MAX(landing_page_id), 0) + 1 FROM landing_pages`); err != nil {
			return err
		}
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO landing_pages (landing_page_id, variant_type, page_url, product_id)
			VALUES (:landing_page_id, :variant_type, :page_url, :product_id)
		`, lp)
		return err
	})
	if database.IsConstraintViolation(err) {
		return apperrors.Constraint("landing page violates a constraint")
	}
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.LandingPage, error) {
	var lp model.LandingPage
	err := r.DB.GetContext(ctx, &lp, `SELECT * FROM landing_pages WHERE landing_page_id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &lp, nil
}

func (r *PGRepository) FindAll(ctx context.Context, skip, limit int) ([]model.LandingPage, error) {
	pages := []model.LandingPage{}
	err := r.DB.SelectContext(ctx, &pages,
		`SELECT * FROM landing_pages ORDER BY landing_page_id LIMIT $1 OFFSET $2`, limit, skip)
	return pages, err
}

func (r *PGRepository) Update(ctx context.Context, lp *model.LandingPage) error {
	err := database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, `
			UPDATE landing_pages
			SET variant_type = :variant_type,
			    page_url = :page_url,
			    product_id = :product_id
			WHERE landing_page_id = :landing_page_id
		`, lp)
		return err
	})
	if database.IsConstraintViolation(err) {
		return apperrors.Constraint("landing page violates a constraint")
	}
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM results
			WHERE test_id IN (SELECT test_id FROM ab_testing WHERE landing_page_id = $1)
		`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM ab_testing WHERE landing_page_id = $1`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM landing_pages WHERE landing_page_id = $1`, id)
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
