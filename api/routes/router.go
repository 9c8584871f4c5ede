package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mobimart/mobimart-backend/api/controllers"
	"github.com/mobimart/mobimart-backend/api/middleware"
	"github.com/mobimart/mobimart-backend/internal/cart"
	"github.com/mobimart/mobimart-backend/internal/catalog"
	"github.com/mobimart/mobimart-backend/internal/checkout"
	"github.com/mobimart/mobimart-backend/internal/comparison"
	"github.com/mobimart/mobimart-backend/internal/discount"
	"github.com/mobimart/mobimart-backend/internal/filter"
	"github.com/mobimart/mobimart-backend/internal/notify"
	"github.com/mobimart/mobimart-backend/internal/search"
	"github.com/mobimart/mobimart-backend/pkg/config"
	"github.com/mobimart/mobimart-backend/pkg/logger"
)

// Deps carries everything the HTTP surface needs. Nil health pingers
// disable that probe rather than failing readiness.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       controllers.Pinger
	KV       controllers.Pinger
	Products catalog.Catalog
	Offers   controllers.OfferLister
	Orders   catalog.OrderSource

	Cart       *cart.Store
	Comparison *comparison.Store
	Discounts  *discount.Tracker
	Checkout   *checkout.Validator
	Filter     *filter.Engine
	Recent     *search.Store
	Sink       notify.Sink
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(d.Config))
		r.Get("/ready", controllers.HealthReady(d.Config, d.Logger, d.DB, d.KV))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", controllers.Ping())

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(d.Products, d.Filter, d.Logger))
			r.Post("/filter", controllers.ProductFilter(d.Products, d.Filter, d.Logger))
			r.Get("/featured", controllers.ProductFeatured(d.Products, d.Logger))
			r.Get("/trending", controllers.ProductTrending(d.Products, d.Logger))
			r.Get("/{productId}", controllers.ProductDetail(d.Products, d.Logger))
		})

		r.Route("/search", func(r chi.Router) {
			r.Get("/", controllers.ProductSearch(d.Products, d.Filter, d.Recent, d.Logger))
			r.Get("/recent", controllers.RecentSearches(d.Recent))
			r.Delete("/recent", controllers.RecentSearchesClear(d.Recent))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(d.Cart, d.Discounts, d.Config))
			r.Post("/items", controllers.CartAdd(d.Cart, d.Discounts, d.Products, d.Sink, d.Config, d.Logger))
			r.Put("/items/{productId}", controllers.CartUpdateQuantity(d.Cart, d.Discounts, d.Config, d.Logger))
			r.Delete("/items/{productId}", controllers.CartRemove(d.Cart, d.Discounts, d.Sink, d.Config, d.Logger))
			r.Delete("/", controllers.CartClear(d.Cart, d.Discounts, d.Config))
		})

		r.Route("/comparison", func(r chi.Router) {
			r.Get("/", controllers.ComparisonFetch(d.Comparison))
			r.Post("/items", controllers.ComparisonAdd(d.Comparison, d.Products, d.Sink, d.Logger))
			r.Delete("/items/{productId}", controllers.ComparisonRemove(d.Comparison, d.Logger))
			r.Delete("/", controllers.ComparisonClear(d.Comparison))
		})

		r.Route("/discount", func(r chi.Router) {
			r.Post("/", controllers.DiscountApply(d.Discounts, d.Cart, d.Sink, d.Config, d.Logger))
			r.Delete("/", controllers.DiscountRemove(d.Discounts, d.Cart, d.Config))
		})
		r.Get("/offers", controllers.OfferList(d.Offers, d.Logger))

		r.Post("/checkout", controllers.CheckoutComplete(d.Checkout, d.Cart, d.Discounts, d.Sink, d.Config, d.Logger))
		r.Post("/checkout/card-preview", controllers.CardPreview(d.Checkout, d.Logger))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(d.Orders, d.Logger))
			r.Get("/{orderId}", controllers.OrderDetail(d.Orders, d.Logger))
		})
	})

	return r
}
