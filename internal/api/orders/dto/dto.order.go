// Package orderdto - input shapes for the order endpoints.
package orderdto

// AddLineInput is the body of POST /orders/current/lines. When
// MarkupPercent is omitted the markup resolves from the caller's coefficient
// configuration.
type AddLineInput struct {
	Code          string   `json:"code" validate:"required,no_xss"`
	Quantity      int      `json:"quantity" validate:"required,min=1"`
	MarkupPercent *float64 `json:"markupPercent" validate:"omitempty,gte=0"`
}

// UpdateLineInput is the body of PUT /orders/current/lines/:code.
type UpdateLineInput struct {
	Quantity      int      `json:"quantity" validate:"required,min=1"`
	MarkupPercent *float64 `json:"markupPercent" validate:"omitempty,gte=0"`
}
