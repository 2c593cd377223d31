package router

import (
	"net/http"

	"brandbear/internal/handler"
	"brandbear/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	sessionHandler *handler.SessionHandler,
	allowedOrigins []string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Recovery -> RequestID -> Logging -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(allowedOrigins))

	r.NotFound(handler.NotFound(logger))
	r.MethodNotAllowed(handler.MethodNotAllowed(logger))

	r.Get("/health", handler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.GetAll)
			r.Get("/{id}", productHandler.GetByID)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", sessionHandler.Get)
				r.Delete("/", sessionHandler.End)
				r.Put("/category", sessionHandler.SetCategory)
				r.Put("/selection", sessionHandler.SelectProduct)
				r.Put("/selection/size", sessionHandler.ChooseSize)
				r.Post("/cart", sessionHandler.AddToCart)
				r.Delete("/cart/{productId}/{size}", sessionHandler.RemoveFromCart)
				r.Put("/cart/open", sessionHandler.SetCartOpen)
				r.Post("/checkout", sessionHandler.Checkout)
				r.Post("/assistant/messages", sessionHandler.SendMessage)
			})
		})
	})

	return r
}
