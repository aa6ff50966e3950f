package server

// ProductRequest is the payload accepted on create and update.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category,omitempty"`
}

// ProductValidationError describes one rejected field.
type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}
