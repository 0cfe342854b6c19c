// Package coeffdto - input shapes for the coefficient endpoints.
package coeffdto

// SaveCoefficientInput is the body of PUT /coefficients. The whole
// configuration is replaced on save.
type SaveCoefficientInput struct {
	Mode           string             `json:"mode" validate:"required,markup_mode"`
	GeneralPercent float64            `json:"generalPercent" validate:"gte=0"`
	PerKeyPercents map[string]float64 `json:"perKeyPercents" validate:"omitempty,dive,gte=0"`
}
