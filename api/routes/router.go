package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fmcommerce/storefront/api/controllers"
	"github.com/fmcommerce/storefront/api/middleware"
	"github.com/fmcommerce/storefront/internal/catalog"
	"github.com/fmcommerce/storefront/pkg/config"
	"github.com/fmcommerce/storefront/pkg/logger"
	"github.com/fmcommerce/storefront/pkg/metrics"
	"github.com/fmcommerce/storefront/pkg/storage"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config     *config.Config
	Logger     *logger.Logger
	Catalog    *catalog.Client
	CartStore  CartStore
	ThemeStore ThemeStore
	StorageP   storage.Pinger
	Registry   *prometheus.Registry
}

// CartStore and ThemeStore mirror the controller-facing store surfaces so the
// router can be exercised with stubs.
type CartStore = controllers.CartStore

type ThemeStore = controllers.ThemeStore

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	httpMetrics := metrics.NewHTTPMetrics(registry)

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(httpMetrics),
		middleware.CORS(deps.Config.CORS),
	)

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.StorageP, deps.Catalog))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ProductsList(deps.Catalog, deps.Logger))
		r.Get("/products/{id}", controllers.ProductDetail(deps.Catalog, deps.Logger))
		r.Get("/categories", controllers.CategoriesList(deps.Catalog, deps.Logger))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(deps.CartStore, deps.Logger))
			r.Delete("/", controllers.CartClear(deps.CartStore, deps.Logger))
			r.Post("/items", controllers.CartAddItem(deps.CartStore, deps.Catalog, deps.Logger))
			r.Patch("/items/{id}", controllers.CartUpdateItem(deps.CartStore, deps.Logger))
			r.Delete("/items/{id}", controllers.CartRemoveItem(deps.CartStore, deps.Logger))
			r.Post("/checkout", controllers.CartCheckout(deps.CartStore, deps.Logger))
		})

		r.Route("/theme", func(r chi.Router) {
			r.Get("/", controllers.ThemeFetch(deps.ThemeStore, deps.Logger))
			r.Post("/toggle", controllers.ThemeToggle(deps.ThemeStore, deps.Logger))
		})
	})

	return r
}
