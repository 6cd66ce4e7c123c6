package model

type Customer struct {
	CustomerID int64  `db:"customer_id" json:"customer_id"`
	Name       string `db:"name" json:"name"`
	Email      string `db:"email" json:"email"` // unique across customers
}
