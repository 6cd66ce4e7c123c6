package dto

// Pointer fields distinguish "absent from the request" from a legitimate
// empty value. Create validates presence; update leaves nil fields untouched.

type CreateCustomerInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type UpdateCustomerInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
