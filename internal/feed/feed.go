package feed

import (
	_ "embed"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"motomart/internal/domain"
)

//go:embed catalog.json
var embedded []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Feed is the static catalog: every product, category and brand the
// storefront can show. It is loaded once at startup and never mutated.
type Feed struct {
	Products   []domain.Product  `json:"products"`
	Categories []domain.Category `json:"categories"`
	Brands     []domain.Brand    `json:"brands"`

	products   map[string]*domain.Product
	categories map[string]*domain.Category
	brands     map[string]*domain.Brand
}

// Load parses the catalog bundled into the binary.
func Load() (*Feed, error) {
	return parse(embedded)
}

// LoadFile parses a catalog from disk, used when FEED_FILE overrides the
// bundled data.
func LoadFile(path string) (*Feed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("feed: read %s: %w", path, err)
	}
	return parse(b)
}

func parse(b []byte) (*Feed, error) {
	var f Feed
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("feed: decode catalog: %w", err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("feed: catalog has no products")
	}

	f.products = make(map[string]*domain.Product, len(f.Products))
	for i := range f.Products {
		p := &f.Products[i]
		if p.ID == "" {
			return nil, fmt.Errorf("feed: product %q has no id", p.Name)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("feed: product %s has negative price", p.ID)
		}
		if _, dup := f.products[p.ID]; dup {
			return nil, fmt.Errorf("feed: duplicate product id %s", p.ID)
		}
		f.products[p.ID] = p
	}

	f.categories = make(map[string]*domain.Category, len(f.Categories))
	for i := range f.Categories {
		c := &f.Categories[i]
		if _, dup := f.categories[c.ID]; dup {
			return nil, fmt.Errorf("feed: duplicate category id %s", c.ID)
		}
		f.categories[c.ID] = c
	}

	f.brands = make(map[string]*domain.Brand, len(f.Brands))
	for i := range f.Brands {
		br := &f.Brands[i]
		if _, dup := f.brands[br.ID]; dup {
			return nil, fmt.Errorf("feed: duplicate brand id %s", br.ID)
		}
		f.brands[br.ID] = br
	}

	return &f, nil
}

// Product returns the catalog entry for id. The pointer is shared and must
// be treated as read-only.
func (f *Feed) Product(id string) (*domain.Product, bool) {
	p, ok := f.products[id]
	return p, ok
}

func (f *Feed) Category(id string) (*domain.Category, bool) {
	c, ok := f.categories[id]
	return c, ok
}

func (f *Feed) Brand(id string) (*domain.Brand, bool) {
	b, ok := f.brands[id]
	return b, ok
}

// Featured returns up to limit products flagged for promotional placement,
// in feed order.
func (f *Feed) Featured(limit int) []domain.Product {
	out := make([]domain.Product, 0, limit)
	for _, p := range f.Products {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// PriceCeiling is the highest catalog price, used as the default upper
// bound of the price-range filter.
func (f *Feed) PriceCeiling() int64 {
	var max int64
	for _, p := range f.Products {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

// CountByCategory reports how many products each category holds, for the
// categories page tiles.
func (f *Feed) CountByCategory() map[string]int {
	out := make(map[string]int, len(f.Categories))
	for _, p := range f.Products {
		out[p.Category]++
	}
	return out
}
