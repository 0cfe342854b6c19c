package basemodels

// PaginateResult wraps a page of items with pagination metadata.
type PaginateResult[T any] struct {
	Items     []T   `json:"items" bson:"items"`         // Items on this page
	Page      int64 `json:"page" bson:"page"`           // Current page, 1-based
	Limit     int64 `json:"limit" bson:"limit"`         // Page size
	ItemCount int64 `json:"itemCount" bson:"itemCount"` // Items actually returned
	Total     int64 `json:"total" bson:"total"`         // Total matching items
	TotalPage int64 `json:"totalPage" bson:"totalPage"` // Total number of pages
}
