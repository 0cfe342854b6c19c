package catalog

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// RenderProductsCSV renders the product list as CSV with the storefront's
// export columns.
func RenderProductsCSV(products []Product) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Código", "Descripción", "Categoría", "Subcategoría", "Marca", "Precio Lista"}); err != nil {
		return "", err
	}

	for _, p := range products {
		record := []string{
			p.Code,
			p.Description,
			p.Category,
			p.Subcategory,
			p.Brand,
			strconv.FormatFloat(p.ListPrice, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
