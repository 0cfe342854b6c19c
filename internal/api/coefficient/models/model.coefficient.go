// Package coeffmodels - coefficient configuration records.
package coeffmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mcweed-code/casa-fabio-parts-pro/internal/pricing"
)

// CoefficientConfig is one user's markup configuration. One record per user;
// saves replace the whole record.
type CoefficientConfig struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID         string             `json:"userId" bson:"userId" index:"unique"`
	Mode           string             `json:"mode" bson:"mode"`
	GeneralPercent float64            `json:"generalPercent" bson:"generalPercent"`
	PerKeyPercents map[string]float64 `json:"perKeyPercents" bson:"perKeyPercents"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// ToPricing converts the stored record into the resolver's value type.
func (c *CoefficientConfig) ToPricing() *pricing.CoefficientConfig {
	if c == nil {
		return nil
	}
	return &pricing.CoefficientConfig{
		Mode:           pricing.Mode(c.Mode),
		GeneralPercent: c.GeneralPercent,
		PerKeyPercents: c.PerKeyPercents,
	}
}
