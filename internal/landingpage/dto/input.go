package dto

type CreateLandingPageInput struct {
	VariantType *string `json:"variant_type"`
	PageURL     *string `json:"page_url"`
	ProductID   *int64  `json:"product_id"`
}

type UpdateLandingPageInput struct {
	VariantType *string `json:"variant_type"`
	PageURL     *string `json:"page_url"`
	ProductID   *int64  `json:"product_id"`
}
