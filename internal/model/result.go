package model

// Result holds the observed metrics of one A/B test run. Rates are fractions
// in [0,1]; they are stored as supplied, without server-side range checks.
type Result struct {
	ResultsID        int64   `db:"results_id" json:"results_id"`
	ClickThroughRate float64 `db:"click_through_rate" json:"click_through_rate"`
	ConversionRate   float64 `db:"conversion_rate" json:"conversion_rate"`
	BounceRate       float64 `db:"bounce_rate" json:"bounce_rate"`
	TestID           int64   `db:"test_id" json:"test_id"`
}
