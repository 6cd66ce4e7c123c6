package dto

type CreateProductInput struct {
	ProductName *string `json:"product_name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url"`
	ReleaseDate *string `json:"release_date"`
}

type UpdateProductInput struct {
	ProductName *string `json:"product_name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url"`
	ReleaseDate *string `json:"release_date"`
}
