package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcweed-code/casa-fabio-parts-pro/internal/common"
)

func TestFetchParsesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"codigo":"FR-001","descripcion":"Pastillas de freno","categoria":"Frenos","subcategoria":"Pastillas","marca":"Ferodo","precioCosto":10000,"precioLista":15000,"imagenUrl":"https://cdn.example.com/fr-001.jpg"}
		]`))
	}))
	defer srv.Close()

	products, err := NewFetcher(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "FR-001", p.Code)
	assert.Equal(t, "Frenos", p.Category)
	assert.Equal(t, 10000.0, p.BaseCost)
	assert.Equal(t, 15000.0, p.ListPrice)
	assert.Equal(t, "https://cdn.example.com/fr-001.jpg", p.ImageURL)
}

func TestFetchNon200IsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewFetcher(srv.URL).Fetch(context.Background())
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeExternalFetch.Code, customErr.Code.Code)
}

func TestFetchMalformedBodyIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	_, err := NewFetcher(srv.URL).Fetch(context.Background())
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.ErrCodeExternalFetch.Code, customErr.Code.Code)
}

func TestFetchWithRetryRecovers(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	fetcher := NewFetcher(srv.URL)
	fetcher.baseDelay = time.Millisecond

	products, err := fetcher.FetchWithRetry(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetchWithRetryHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	fetcher := NewFetcher(srv.URL)
	fetcher.baseDelay = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := fetcher.FetchWithRetry(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
