package main

import (
	"context"
	"time"

	"github.com/mcweed-code/casa-fabio-parts-pro/internal/catalog"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/global"
	"github.com/mcweed-code/casa-fabio-parts-pro/internal/logger"
)

// InitCatalog builds the catalog cache and performs the first load. With no
// feed URL configured the cache is seeded with development data instead.
func InitCatalog() *catalog.Cache {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	if cfg.CatalogURL == "" {
		cache := catalog.NewCache(nil)
		cache.Seed(seedProducts())
		log.Infof("CATALOG_URL not set, seeded %d development products", cache.Len())
		return cache
	}

	cache := catalog.NewCache(catalog.NewFetcher(cfg.CatalogURL))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// A failed first load is not fatal; the refresh worker retries later.
	if err := cache.Refresh(ctx); err != nil {
		log.WithError(err).Warn("Initial catalog load failed, serving an empty catalog until the next refresh")
	} else {
		log.Infof("Catalog loaded with %d products", cache.Len())
	}

	return cache
}

// seedProducts returns the development catalog used when no feed is
// configured.
func seedProducts() []catalog.Product {
	return []catalog.Product{
		{Code: "FRE-001", Description: "Pastillas de freno delanteras", Category: "Frenos", Subcategory: "Pastillas", Brand: "Ferodo", BaseCost: 15000, ListPrice: 18750},
		{Code: "FRE-002", Description: "Disco de freno ventilado", Category: "Frenos", Subcategory: "Discos", Brand: "Fremax", BaseCost: 32000, ListPrice: 40000},
		{Code: "MOT-001", Description: "Filtro de aceite", Category: "Motor", Subcategory: "Filtros", Brand: "Mann", BaseCost: 4000, ListPrice: 5000},
		{Code: "MOT-002", Description: "Filtro de aire", Category: "Motor", Subcategory: "Filtros", Brand: "Mann", BaseCost: 5500, ListPrice: 6875},
		{Code: "MOT-003", Description: "Correa de distribucion", Category: "Motor", Subcategory: "Correas", Brand: "Gates", BaseCost: 21000, ListPrice: 26250},
		{Code: "SUS-001", Description: "Amortiguador trasero", Category: "Suspension", Subcategory: "Amortiguadores", Brand: "Sachs", BaseCost: 48000, ListPrice: 60000},
		{Code: "ELE-001", Description: "Bujia de encendido", Category: "Electricidad", Subcategory: "Encendido", Brand: "NGK", BaseCost: 2800, ListPrice: 3500},
		{Code: "ELE-002", Description: "Bateria 12V 75Ah", Category: "Electricidad", Subcategory: "Baterias", Brand: "Moura", BaseCost: 95000, ListPrice: 118750},
	}
}
