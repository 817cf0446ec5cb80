package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marmos91/storefront/pkg/api/middleware"
	"github.com/marmos91/storefront/pkg/models"
	"github.com/marmos91/storefront/pkg/store"
)

// UserHandler handles user listing API endpoints.
type UserHandler struct {
	users    store.UserStore
	products store.ProductStore
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users store.UserStore, products store.ProductStore) *UserHandler {
	return &UserHandler{users: users, products: products}
}

// List handles GET /api/v1/users.
// Returns all users, sanitized. Public.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		InternalServerError(w, "Failed to list users")
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, userToResponse(u))
	}
	WriteJSONOK(w, responses)
}

// Get handles GET /api/v1/users/{id}.
// Returns one user, sanitized. Public; the user's products are embedded
// only when the authenticated requester is that same user.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.users.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			NotFound(w, "User not found")
			return
		}
		InternalServerError(w, "Failed to fetch user")
		return
	}

	resp := userToResponse(user)

	if requester := middleware.UserFromContext(r.Context()); requester != nil && requester.ID == user.ID {
		products, err := h.products.ListProductsByUser(r.Context(), user.ID)
		if err != nil {
			InternalServerError(w, "Failed to fetch products")
			return
		}
		resp.Products = products
	}

	WriteJSONOK(w, resp)
}
