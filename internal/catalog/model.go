// Package catalog holds the product catalog: the read model fetched from the
// distributor feed and the in-memory cache serving it.
package catalog

// Product is one catalog entry. Products are immutable; a refresh replaces
// the whole list. JSON tags follow the distributor feed field names.
type Product struct {
	Code        string  `json:"codigo" bson:"code"`
	Description string  `json:"descripcion" bson:"description"`
	Category    string  `json:"categoria" bson:"category"`
	Subcategory string  `json:"subcategoria" bson:"subcategory"`
	Brand       string  `json:"marca" bson:"brand"`
	BaseCost    float64 `json:"precioCosto" bson:"baseCost"`
	ListPrice   float64 `json:"precioLista" bson:"listPrice"`
	ImageURL    string  `json:"imagenUrl,omitempty" bson:"imageUrl,omitempty"`
}

// Filter narrows a catalog listing. Empty fields match everything.
type Filter struct {
	Category    string
	Subcategory string
	Brand       string
	Search      string // Matches code and description, case-insensitive
}
