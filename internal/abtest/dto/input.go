package dto

type CreateABTestInput struct {
	TestName      *string `json:"test_name"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	LandingPageID *int64  `json:"landing_page_id"`
	ProductID     *int64  `json:"product_id"`
}

type UpdateABTestInput struct {
	TestName      *string `json:"test_name"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	LandingPageID *int64  `json:"landing_page_id"`
	ProductID     *int64  `json:"product_id"`
}
