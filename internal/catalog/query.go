package catalog

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"motomart/internal/domain"
)

// PageSize is the fixed number of products per catalog page.
const PageSize = 12

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// ValidSort reports whether k is one of the supported sort keys.
func ValidSort(k SortKey) bool {
	switch k {
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return true
	}
	return false
}

// Filter is the transient query state of the products page. Zero values
// mean "match everything"; PriceMax <= 0 means no upper bound.
type Filter struct {
	Search      string
	Category    string
	Brand       string
	PriceMin    int64
	PriceMax    int64
	InStockOnly bool
	Sort        SortKey
	Page        int
}

// Result is one visible page plus the counts pagination needs.
type Result struct {
	Visible    []domain.Product
	TotalCount int
	Page       int
	TotalPages int
}

// Query narrows the full feed through the filter stages, sorts the
// survivors, and slices out the requested page. It never mutates all and
// never fails; an empty page is a normal outcome.
func Query(all []domain.Product, f Filter) Result {
	out := all

	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		out = lo.Filter(out, func(p domain.Product, _ int) bool {
			return strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Description), q)
		})
	}
	if f.Category != "" {
		out = lo.Filter(out, func(p domain.Product, _ int) bool { return p.Category == f.Category })
	}
	if f.Brand != "" {
		out = lo.Filter(out, func(p domain.Product, _ int) bool { return p.Brand == f.Brand })
	}
	out = lo.Filter(out, func(p domain.Product, _ int) bool {
		if p.Price < f.PriceMin {
			return false
		}
		return f.PriceMax <= 0 || p.Price <= f.PriceMax
	})
	if f.InStockOnly {
		out = lo.Filter(out, func(p domain.Product, _ int) bool { return p.InStock })
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNameAsc:
		col := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool { return col.CompareString(out[i].Name, out[j].Name) < 0 })
	case SortNameDesc:
		col := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool { return col.CompareString(out[i].Name, out[j].Name) > 0 })
	default: // featured-first, stable with no secondary key
		sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	}

	total := len(out)
	pages := (total + PageSize - 1) / PageSize

	page := f.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Visible:    out[start:end],
		TotalCount: total,
		Page:       page,
		TotalPages: pages,
	}
}
