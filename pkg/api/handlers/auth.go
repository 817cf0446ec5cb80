package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/marmos91/storefront/internal/logger"
	"github.com/marmos91/storefront/pkg/api/auth"
	"github.com/marmos91/storefront/pkg/api/middleware"
	"github.com/marmos91/storefront/pkg/models"
	"github.com/marmos91/storefront/pkg/store"
)

// AuthHandler handles authentication-related API endpoints.
type AuthHandler struct {
	store      store.UserStore
	jwtService *auth.JWTService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s store.UserStore, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		store:      s,
		jwtService: jwtService,
	}
}

// CredentialsRequest is the request body for register and login.
type CredentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// TokenResponse is the response body for successful register and login.
type TokenResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int64        `json:"expires_in"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse is a sanitized user representation for API responses.
// The password hash never appears here.
type UserResponse struct {
	ID        string            `json:"id"`
	Login     string            `json:"login"`
	CreatedAt time.Time         `json:"created_at"`
	LastLogin *time.Time        `json:"last_login,omitempty"`
	Products  []*models.Product `json:"products,omitempty"`
}

// Register handles POST /api/v1/auth/register.
// Creates a new account and returns a freshly issued token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.Login == "" || req.Password == "" {
		BadRequest(w, "Login and password are required")
		return
	}

	passwordHash, err := models.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, models.ErrPasswordEmpty) || errors.Is(err, models.ErrPasswordTooLong) {
			BadRequest(w, err.Error())
			return
		}
		InternalServerError(w, "Failed to hash password")
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Login:        req.Login,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	if _, err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, models.ErrDuplicateUser) {
			Conflict(w, "An account with this login already exists")
			return
		}
		InternalServerError(w, "Failed to register user")
		return
	}

	token, err := h.jwtService.Generate(user)
	if err != nil {
		InternalServerError(w, "Failed to generate token")
		return
	}

	WriteJSONCreated(w, tokenResponse(token, user))
}

// Login handles POST /api/v1/auth/login.
// Authenticates credentials and returns a freshly issued token.
// Unknown login and wrong password produce the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.Login == "" || req.Password == "" {
		BadRequest(w, "Login and password are required")
		return
	}

	user, err := h.store.ValidateCredentials(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			Unauthorized(w, "Invalid credentials")
			return
		}
		InternalServerError(w, "Authentication failed")
		return
	}

	token, err := h.jwtService.Generate(user)
	if err != nil {
		InternalServerError(w, "Failed to generate token")
		return
	}

	// Update last login time (non-critical, log error for debugging)
	if err := h.store.UpdateLastLogin(r.Context(), user.Login, time.Now()); err != nil {
		logger.Warn("failed to update last login time", "login", user.Login, "error", err)
	}

	WriteJSONOK(w, tokenResponse(token, user))
}

// Me handles GET /api/v1/auth/me.
// Returns the current authenticated user's information.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		Unauthorized(w, "You must be logged in")
		return
	}

	WriteJSONOK(w, userToResponse(user))
}

func tokenResponse(token *auth.Token, user *models.User) TokenResponse {
	return TokenResponse{
		Token:     token.Token,
		TokenType: token.TokenType,
		ExpiresIn: token.ExpiresIn,
		ExpiresAt: token.ExpiresAt,
		User:      userToResponse(user),
	}
}

// userToResponse converts a User to a UserResponse for API output.
func userToResponse(user *models.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Login:     user.Login,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}
	for i := range user.Products {
		resp.Products = append(resp.Products, &user.Products[i])
	}
	return resp
}
