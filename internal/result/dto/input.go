package dto

// Rates are fractions in [0,1]; the service stores them as supplied and does
// not range-check beyond the type.

type CreateResultInput struct {
	ClickThroughRate *float64 `json:"click_through_rate"`
	ConversionRate   *float64 `json:"conversion_rate"`
	BounceRate       *float64 `json:"bounce_rate"`
	TestID           *int64   `json:"test_id"`
}

type UpdateResultInput struct {
	ClickThroughRate *float64 `json:"click_through_rate"`
	ConversionRate   *float64 `json:"conversion_rate"`
	BounceRate       *float64 `json:"bounce_rate"`
	TestID           *int64   `json:"test_id"`
}
