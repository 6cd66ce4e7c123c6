package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates all tables needed by the service.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Column types are restricted to ones both backends understand. Dates are
// text on purpose: the upstream CSV feeds carry them as strings.
const schema = `
CREATE TABLE IF NOT EXISTS customers (
    customer_id BIGINT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS products (
    product_id BIGINT PRIMARY KEY,
    product_name TEXT NOT NULL,
    category TEXT NOT NULL,
    description TEXT,
    logo_url TEXT,
    release_date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS landing_pages (
    landing_page_id BIGINT PRIMARY KEY,
    variant_type TEXT NOT NULL,
    page_url TEXT NOT NULL,
    product_id BIGINT NOT NULL REFERENCES products(product_id)
);

CREATE TABLE IF NOT EXISTS ab_testing (
    test_id BIGINT PRIMARY KEY,
    test_name TEXT NOT NULL,
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    landing_page_id BIGINT NOT NULL REFERENCES landing_pages(landing_page_id),
    product_id BIGINT NOT NULL REFERENCES products(product_id)
);

CREATE TABLE IF NOT EXISTS results (
    results_id BIGINT PRIMARY KEY,
    click_through_rate DOUBLE PRECISION NOT NULL,
    conversion_rate DOUBLE PRECISION NOT NULL,
    bounce_rate DOUBLE PRECISION NOT NULL,
    test_id BIGINT NOT NULL REFERENCES ab_testing(test_id)
);
`
