package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []Product {
	return []Product{
		{Code: "FR-001", Description: "Pastillas de freno", Category: "Frenos", Subcategory: "Pastillas", Brand: "Ferodo", BaseCost: 10000, ListPrice: 15000},
		{Code: "MO-210", Description: "Filtro de aceite", Category: "Motor", Subcategory: "Filtros", Brand: "Mann", BaseCost: 4000, ListPrice: 6500},
		{Code: "SU-930", Description: "Amortiguador delantero", Category: "Suspensión", Subcategory: "Amortiguadores", Brand: "Monroe", BaseCost: 30000, ListPrice: 48000},
	}
}

func TestCacheSeedAndLookup(t *testing.T) {
	cache := NewCache(nil)
	cache.Seed(sampleProducts())

	assert.Equal(t, 3, cache.Len())

	p, ok := cache.GetByCode("FR-001")
	require.True(t, ok)
	assert.Equal(t, "Pastillas de freno", p.Description)

	_, ok = cache.GetByCode("missing")
	assert.False(t, ok)
}

func TestCacheFilter(t *testing.T) {
	cache := NewCache(nil)
	cache.Seed(sampleProducts())

	assert.Len(t, cache.Filter(Filter{Category: "Frenos"}), 1)
	assert.Len(t, cache.Filter(Filter{Brand: "Mann"}), 1)
	assert.Len(t, cache.Filter(Filter{Search: "filtro"}), 1)
	assert.Len(t, cache.Filter(Filter{Search: "fr-0"}), 1)
	assert.Empty(t, cache.Filter(Filter{Category: "Frenos", Brand: "Mann"}))
	assert.Len(t, cache.Filter(Filter{}), 3)
}

func TestRefreshSwapsWholesale(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"codigo":"NEW-1","descripcion":"Bujía","categoria":"Motor","subcategoria":"Encendido","marca":"NGK","precioCosto":1200,"precioLista":2000}]`))
	}))
	defer srv.Close()

	fetcher := NewFetcher(srv.URL)
	cache := NewCache(fetcher)
	cache.Seed(sampleProducts())

	require.NoError(t, cache.Refresh(context.Background()))

	assert.Equal(t, 1, cache.Len())
	assert.False(t, cache.Stale())

	_, ok := cache.GetByCode("FR-001")
	assert.False(t, ok, "old products must be gone after a successful refresh")

	p, ok := cache.GetByCode("NEW-1")
	require.True(t, ok)
	assert.Equal(t, "Bujía", p.Description)
}

func TestRefreshKeepsLastKnownGoodOnFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	fetcher := NewFetcher(srv.URL)
	fetcher.baseDelay = time.Millisecond

	cache := NewCache(fetcher)
	cache.Seed(sampleProducts())

	err := cache.Refresh(context.Background())
	require.Error(t, err)

	// All attempts exhausted, previous list untouched, staleness flagged.
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, 3, cache.Len())
	assert.True(t, cache.Stale())

	p, ok := cache.GetByCode("FR-001")
	require.True(t, ok)
	assert.Equal(t, 15000.0, p.ListPrice)
}

func TestRenderProductsCSV(t *testing.T) {
	out, err := RenderProductsCSV(sampleProducts()[:1])
	require.NoError(t, err)

	assert.Contains(t, out, "Código,Descripción,Categoría,Subcategoría,Marca,Precio Lista")
	assert.Contains(t, out, "FR-001,Pastillas de freno,Frenos,Pastillas,Ferodo,15000.00")
}
