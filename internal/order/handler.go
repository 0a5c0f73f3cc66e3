// AngelaMos | 2026
// handler.go

package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/gearstore/internal/core"
	"github.com/angelamos/gearstore/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.GetOrders)
		r.Post("/", h.Checkout)
		r.Get("/{orderID}", h.GetOrder)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Put("/{orderID}/status", h.UpdateStatus)
		})
	})
}

func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	orders, err := h.service.GetOrders(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.ListOK(w, ToOrderResponses(orders), len(orders))
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	orderID := chi.URLParam(r, "orderID")

	order, err := h.service.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "order")
		case errors.Is(err, core.ErrForbidden):
			core.Forbidden(w, "not authorized to access this order")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToOrderResponse(order))
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	order, err := h.service.Checkout(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, core.ErrEmptyCart) {
			core.JSONError(w, core.EmptyCartError())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToOrderResponse(order))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "order")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, err.Error())
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToOrderResponse(order))
}
