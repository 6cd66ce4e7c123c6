package model

type Product struct {
	ProductID   int64   `db:"product_id" json:"product_id"`
	ProductName string  `db:"product_name" json:"product_name"`
	Category    string  `db:"category" json:"category"`
	Description *string `db:"description" json:"description"` // Nullable
	LogoURL     *string `db:"logo_url" json:"logo_url"`       // Nullable
	ReleaseDate string  `db:"release_date" json:"release_date"`
}
