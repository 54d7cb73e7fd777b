package services

import (
	"motomart/internal/catalog"
	"motomart/internal/domain"
	"motomart/internal/feed"
)

type CatalogService struct {
	Feed *feed.Feed
}

func NewCatalogService(f *feed.Feed) *CatalogService {
	return &CatalogService{Feed: f}
}

// Browse runs the filter/sort/paginate pipeline over the full feed.
func (s *CatalogService) Browse(f catalog.Filter) catalog.Result {
	return catalog.Query(s.Feed.Products, f)
}

func (s *CatalogService) Product(id string) (*domain.Product, bool) {
	return s.Feed.Product(id)
}

func (s *CatalogService) Categories() []domain.Category { return s.Feed.Categories }

func (s *CatalogService) Brands() []domain.Brand { return s.Feed.Brands }

func (s *CatalogService) Featured(limit int) []domain.Product {
	return s.Feed.Featured(limit)
}

func (s *CatalogService) PriceCeiling() int64 { return s.Feed.PriceCeiling() }

func (s *CatalogService) CountByCategory() map[string]int { return s.Feed.CountByCategory() }

// Availability reports the stock flag as the JSON availability shape.
// Stock is a display concern only; the cart never checks it.
func (s *CatalogService) Availability(id string) (domain.Availability, bool) {
	p, ok := s.Feed.Product(id)
	if !ok {
		return domain.Availability{}, false
	}
	if p.InStock {
		return domain.Availability{Status: "IN_STOCK"}, true
	}
	return domain.Availability{Status: "OUT_OF_STOCK"}, true
}
