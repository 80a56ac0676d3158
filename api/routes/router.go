package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homazon/homazon-backend/api/controllers"
	"github.com/homazon/homazon-backend/api/middleware"
	authsvc "github.com/homazon/homazon-backend/internal/auth"
	cartsvc "github.com/homazon/homazon-backend/internal/cart"
	"github.com/homazon/homazon-backend/internal/catalog"
	checkoutsvc "github.com/homazon/homazon-backend/internal/checkout"
	ordersvc "github.com/homazon/homazon-backend/internal/orders"
	usersvc "github.com/homazon/homazon-backend/internal/users"
	"github.com/homazon/homazon-backend/pkg/config"
	"github.com/homazon/homazon-backend/pkg/db"
	"github.com/homazon/homazon-backend/pkg/logger"
	"github.com/homazon/homazon-backend/pkg/redis"
)

type Services struct {
	Auth     authsvc.Service
	Catalog  catalog.Service
	Cart     cartsvc.Service
	Checkout checkoutsvc.Service
	Orders   ordersvc.Service
	Users    usersvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	svcs Services,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
		r.Get("/products", controllers.ProductsList(svcs.Catalog, logg))
		r.Get("/products/{productId}", controllers.ProductGet(svcs.Catalog, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(svcs.Auth, logg))
		r.Post("/login", controllers.AuthLogin(svcs.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/me", func(r chi.Router) {
			r.Get("/", controllers.UsersMe(svcs.Users, logg))
			r.Route("/shipping-profiles", func(r chi.Router) {
				r.Get("/", controllers.ShippingProfilesList(svcs.Users, logg))
				r.Post("/", controllers.ShippingProfileCreate(svcs.Users, logg))
				r.Post("/{profileId}/default", controllers.ShippingProfileSetDefault(svcs.Users, logg))
			})
			r.Route("/payment-profiles", func(r chi.Router) {
				r.Get("/", controllers.PaymentProfilesList(svcs.Users, logg))
				r.Post("/", controllers.PaymentProfileCreate(svcs.Users, logg))
				r.Post("/{profileId}/default", controllers.PaymentProfileSetDefault(svcs.Users, logg))
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(svcs.Cart, logg))
			r.Post("/items", controllers.CartAddItem(svcs.Cart, logg))
			r.Put("/items/{variantId}", controllers.CartUpdateItem(svcs.Cart, logg))
			r.Delete("/items/{variantId}", controllers.CartRemoveItem(svcs.Cart, logg))
			r.Delete("/", controllers.CartClear(svcs.Cart, logg))
		})

		r.Post("/checkout", controllers.Checkout(svcs.Checkout, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(svcs.Orders, logg))
			r.Get("/{orderId}", controllers.OrderGet(svcs.Orders, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.RequireAdmin(logg))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.AdminProductCreate(svcs.Catalog, logg))
			r.Patch("/{productId}", controllers.AdminProductUpdate(svcs.Catalog, logg))
			r.Delete("/{productId}", controllers.AdminProductDelete(svcs.Catalog, logg))
			r.Post("/{productId}/variants", controllers.AdminVariantAdd(svcs.Catalog, logg))
		})
		r.Route("/variants", func(r chi.Router) {
			r.Patch("/{variantId}", controllers.AdminVariantUpdate(svcs.Catalog, logg))
			r.Delete("/{variantId}", controllers.AdminVariantDelete(svcs.Catalog, logg))
		})
	})

	return r
}
