package model

// ABTest lives in the ab_testing table. Dates are stored as text, matching
// the CSV feeds the batch loader ingests.
type ABTest struct {
	TestID        int64  `db:"test_id" json:"test_id"`
	TestName      string `db:"test_name" json:"test_name"`
	StartDate     string `db:"start_date" json:"start_date"`
	EndDate       string `db:"end_date" json:"end_date"`
	LandingPageID int64  `db:"landing_page_id" json:"landing_page_id"`
	ProductID     int64  `db:"product_id" json:"product_id"`
}
