package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marmos91/storefront/pkg/api/middleware"
	"github.com/marmos91/storefront/pkg/models"
	"github.com/marmos91/storefront/pkg/store"
)

// ProductHandler handles catalog API endpoints.
//
// Products are publicly readable; only creation requires a logged-in
// user. Orders, by contrast, are private to their owner.
type ProductHandler struct {
	products store.ProductStore
	orders   store.OrderStore
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products store.ProductStore, orders store.OrderStore) *ProductHandler {
	return &ProductHandler{products: products, orders: orders}
}

// CreateProductRequest is the request body for POST /api/v1/products.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// ProductDetailResponse is the response body for GET /api/v1/products/{id}.
// UserOrders is populated only for authenticated requesters and lists
// the requester's own orders containing the product.
type ProductDetailResponse struct {
	*models.Product
	UserOrders []*models.Order `json:"user_orders,omitempty"`
}

// List handles GET /api/v1/products.
// Returns the full catalog. Public.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		InternalServerError(w, "Failed to list products")
		return
	}
	WriteJSONOK(w, products)
}

// Get handles GET /api/v1/products/{id}.
// Public. When the requester is logged in, their orders containing this
// product are embedded in the response.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			NotFound(w, "Product not found")
			return
		}
		InternalServerError(w, "Failed to fetch product")
		return
	}

	resp := ProductDetailResponse{Product: product}

	if user := middleware.UserFromContext(r.Context()); user != nil {
		orders, err := h.orders.ListOrdersWithProduct(r.Context(), user.ID, product.ID)
		if err != nil {
			InternalServerError(w, "Failed to fetch orders")
			return
		}
		resp.UserOrders = orders
	}

	WriteJSONOK(w, resp)
}

// Create handles POST /api/v1/products.
// Creates a new product owned by the logged-in user.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		Unauthorized(w, "You must be logged in")
		return
	}

	var req CreateProductRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.Name == "" {
		BadRequest(w, "Name is required")
		return
	}
	if req.Price <= 0 {
		BadRequest(w, "Price must be positive")
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		UserID:      user.ID,
	}

	if _, err := h.products.CreateProduct(r.Context(), product); err != nil {
		InternalServerError(w, "Failed to create product")
		return
	}

	WriteJSONCreated(w, product)
}
