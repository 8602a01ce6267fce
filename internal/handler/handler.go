package handler

import (
	"github.com/go-chi/chi/v5"

	"fooddash-be/internal/cart"
	"fooddash-be/internal/catalog"
	"fooddash-be/internal/contact"
	"fooddash-be/internal/logger"
	"fooddash-be/internal/middleware"
	"fooddash-be/internal/order"
	"fooddash-be/internal/user"
)

type Handler struct {
	catalogSvc catalog.Service
	cartSvc    cart.Service
	userSvc    user.Service
	orderSvc   order.Service
	contactSvc contact.Service
}

func New(
	catalogSvc catalog.Service,
	cartSvc cart.Service,
	userSvc user.Service,
	orderSvc order.Service,
	contactSvc contact.Service,
) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		cartSvc:    cartSvc,
		userSvc:    userSvc,
		orderSvc:   orderSvc,
		contactSvc: contactSvc,
	}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.Auth(h.userSvc))
	r.Use(middleware.RateLimit)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", h.Signup)
		r.Post("/auth/login", h.Login)
		r.Post("/auth/logout", h.Logout)

		r.Get("/menu", h.Menu)
		r.Get("/menu/categories", h.Categories)

		r.Get("/cart", h.Cart)
		r.Post("/contact", h.Contact)

		// Identity-gated surface: mutating the cart through the
		// ordering flow, checkout, and order history.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/cart/items", h.AddToCart)
			r.Post("/cart/items/{id}/increment", h.IncrementItem)
			r.Post("/cart/items/{id}/decrement", h.DecrementItem)
			r.Delete("/cart/items/{id}", h.RemoveItem)

			r.Post("/checkout", h.Checkout)
			r.Get("/orders", h.Orders)
			r.Delete("/orders/{id}", h.CancelOrder)
			r.Get("/orders/{id}/invoice", h.Invoice)
		})
	})

	return r
}
