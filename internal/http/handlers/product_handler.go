package handlers

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"motomart/internal/catalog"
	"motomart/internal/log"
	"motomart/internal/services"
	"motomart/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List renders the products page: the full feed run through the
// filter/sort/paginate pipeline. Category and brand arrive either from the
// sidebar form or as plain URL query params seeding the initial state.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ceiling := h.Catalog.PriceCeiling()

	f := catalog.Filter{
		Search:      validate.Q(c.Query("q")),
		PriceMin:    validate.Price(c.Query("price_min"), 0, ceiling),
		PriceMax:    validate.Price(c.Query("price_max"), ceiling, ceiling),
		InStockOnly: c.Query("in_stock") == "1",
		Sort:        validate.Sort(c.Query("sort")),
		Page:        validate.Page(c.Query("page")),
	}
	if raw := c.Query("category"); raw != "" {
		if id, ok := validate.ID(raw); ok {
			f.Category = id
		} else {
			log.Security(c, "validation.fail", map[string]any{"field": "category"})
		}
	}
	if raw := c.Query("brand"); raw != "" {
		if id, ok := validate.ID(raw); ok {
			f.Brand = id
		} else {
			log.Security(c, "validation.fail", map[string]any{"field": "brand"})
		}
	}

	res := h.Catalog.Browse(f)

	pages := make([]int, res.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}

	return render(c, "products", fiber.Map{
		"Filters":      f,
		"Result":       res,
		"Pages":        pages,
		"Categories":   h.Catalog.Categories(),
		"Brands":       h.Catalog.Brands(),
		"PriceCeiling": ceiling,
		"ActiveCount":  activeFilterCount(f, ceiling),
		"QueryBase":    queryBase(f),
	})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This bike is no longer available"})
	}
	p, ok := h.Catalog.Product(id)
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This bike is no longer available"})
	}
	cat, _ := h.Catalog.Feed.Category(p.Category)
	brand, _ := h.Catalog.Feed.Brand(p.Brand)
	return render(c, "product", fiber.Map{"P": p, "Category": cat, "Brand": brand})
}

func activeFilterCount(f catalog.Filter, ceiling int64) int {
	n := 0
	if f.Search != "" {
		n++
	}
	if f.Category != "" {
		n++
	}
	if f.Brand != "" {
		n++
	}
	if f.InStockOnly {
		n++
	}
	if f.PriceMin > 0 || f.PriceMax < ceiling {
		n++
	}
	return n
}

// queryBase re-encodes the filter without a page param, so pagination
// links preserve every filter and a filter change always lands on page 1.
func queryBase(f catalog.Filter) string {
	v := url.Values{}
	if f.Search != "" {
		v.Set("q", f.Search)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Brand != "" {
		v.Set("brand", f.Brand)
	}
	if f.PriceMin > 0 {
		v.Set("price_min", strconv.FormatInt(f.PriceMin, 10))
	}
	if f.PriceMax > 0 {
		v.Set("price_max", strconv.FormatInt(f.PriceMax, 10))
	}
	if f.InStockOnly {
		v.Set("in_stock", "1")
	}
	if f.Sort != catalog.SortFeatured {
		v.Set("sort", string(f.Sort))
	}
	return v.Encode()
}
