package model

type LandingPage struct {
	LandingPageID int64  `db:"landing_page_id" json:"landing_page_id"`
	VariantType   string `db:"variant_type" json:"variant_type"`
	PageURL       string `db:"page_url" json:"page_url"`
	ProductID     int64  `db:"product_id" json:"product_id"`
}
