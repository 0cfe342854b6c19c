// Package utility holds small data transformation helpers shared by the
// persistence layer.
package utility

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToMap converts a struct into a map keyed by its bson field names.
// Fields marked omitempty are dropped when they hold their zero value.
func ToMap(s interface{}) (map[string]interface{}, error) {
	data, err := bson.Marshal(s)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return result, nil
}
