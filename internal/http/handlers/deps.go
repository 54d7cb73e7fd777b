package handlers

import (
	"motomart/internal/cart"
	"motomart/internal/config"
	"motomart/internal/feed"
	"motomart/internal/services"
)

type Deps struct {
	HomeHandler         *HomeHandler
	ProductHandler      *ProductHandler
	CartHandler         *CartHandler
	OrderHandler        *OrderHandler
	PrefsHandler        *PrefsHandler
	AvailabilityHandler *AvailabilityHandler
}

func NewDeps(f *feed.Feed, carts *cart.Manager, cfg config.Config) *Deps {
	catalogSvc := services.NewCatalogService(f)
	cartSvc := services.NewCartService(carts, f)
	orderSvc := services.NewOrderService(cartSvc)

	return &Deps{
		HomeHandler:         &HomeHandler{Catalog: catalogSvc},
		ProductHandler:      &ProductHandler{Catalog: catalogSvc},
		CartHandler:         &CartHandler{Cart: cartSvc},
		OrderHandler:        &OrderHandler{Cart: cartSvc, Order: orderSvc, Delay: cfg.CheckoutDelay},
		PrefsHandler:        &PrefsHandler{Carts: carts},
		AvailabilityHandler: &AvailabilityHandler{Catalog: catalogSvc},
	}
}
