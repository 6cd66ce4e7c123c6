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

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	err := database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &p.ProductID,
			`SELECT COALESCE(MAX(product_id), 0) + 1 FROM products`); err != nil {
			return err
		}
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO products (product_id, product_name, category, description, logo_url, release_date)
			VALUES (:product_id, :product_name, :category, :description, :logo_url, :release_date)
		`, p)
		return err
	})
	if database.IsConstraintViolation(err) {
		return apperrors.Constraint("product violates a constraint")
	}
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE product_id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, skip, limit int) ([]model.Product, error) {
	products := []model.Product{}
	err := r.DB.SelectContext(ctx, &products,
		`SELECT * FROM products ORDER BY product_id LIMIT $1 OFFSET $2`, limit, skip)
	return products, err
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	return database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, `
			UPDATE products
			SET product_name = :product_name,
			    category = :category,
			    description = :description,
			    logo_url = :logo_url,
			    release_date = :release_date
			WHERE product_id = :product_id
		`, p)
		return err
	})
}

// Delete walks the ownership tree bottom-up so foreign keys hold at every
// step: results of the product's tests, the tests, the landing pages, then
// the product row itself.
func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM results
			WHERE test_id IN (SELECT test_id FROM ab_testing WHERE product_id = $1)
		`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM ab_testing WHERE product_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM landing_pages WHERE product_id = $1`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM products WHERE product_id = $1`, id)
		return err
	})
}
