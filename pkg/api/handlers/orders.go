package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/marmos91/storefront/pkg/api/middleware"
	"github.com/marmos91/storefront/pkg/models"
	"github.com/marmos91/storefront/pkg/store"
)

// OrderHandler handles order API endpoints.
// All order routes require a logged-in user; an order is only ever
// visible to the user that placed it.
type OrderHandler struct {
	orders store.OrderStore
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders store.OrderStore) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrderRequest is the request body for POST /api/v1/orders.
// Date accepts RFC 3339 or a plain date ("2006-01-02"); empty means now.
type CreateOrderRequest struct {
	Date       string   `json:"date,omitempty"`
	Note       string   `json:"note,omitempty"`
	ProductIDs []string `json:"product_ids"`
}

// List handles GET /api/v1/orders.
// Returns the logged-in user's orders with products.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		Unauthorized(w, "You must be logged in")
		return
	}

	orders, err := h.orders.ListOrdersByUser(r.Context(), user.ID)
	if err != nil {
		InternalServerError(w, "Failed to list orders")
		return
	}
	WriteJSONOK(w, orders)
}

// Create handles POST /api/v1/orders.
// Creates a new order for the logged-in user.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		Unauthorized(w, "You must be logged in")
		return
	}

	var req CreateOrderRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if len(req.ProductIDs) == 0 {
		BadRequest(w, "Product ids are required")
		return
	}

	date, err := parseOrderDate(req.Date)
	if err != nil {
		BadRequest(w, "Invalid date; use RFC 3339 or YYYY-MM-DD")
		return
	}

	order := &models.Order{
		UserID: user.ID,
		Date:   date,
		Note:   req.Note,
	}

	if _, err := h.orders.CreateOrder(r.Context(), order, req.ProductIDs); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			BadRequest(w, "One or more product ids do not exist")
			return
		}
		InternalServerError(w, "Failed to create order")
		return
	}

	WriteJSONCreated(w, order)
}

// Get handles GET /api/v1/orders/{id}.
// Returns one order. 404 when absent, 403 when owned by another user.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		Unauthorized(w, "You must be logged in")
		return
	}

	id := chi.URLParam(r, "id")

	order, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			NotFound(w, "Order not found")
			return
		}
		InternalServerError(w, "Failed to fetch order")
		return
	}

	if !order.BelongsTo(user.ID) {
		Forbidden(w, "You do not have access to this order")
		return
	}

	WriteJSONOK(w, order)
}

// parseOrderDate parses an order date from the request.
// Empty input means the zero time; the store substitutes the current time.
func parseOrderDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
