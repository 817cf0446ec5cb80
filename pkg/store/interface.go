package store

import (
	"context"
	"time"

	"github.com/marmos91/storefront/pkg/models"
)

// UserStore defines the credential store consumed by the authentication
// gate and the register/login flows.
type UserStore interface {
	// GetUserByLogin retrieves a user by login key.
	// Returns models.ErrUserNotFound if no such user exists.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)

	// GetUserByID retrieves a user by id.
	// Returns models.ErrUserNotFound if no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// ListUsers returns all users.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// CreateUser persists a new user and returns its id.
	// Returns models.ErrDuplicateUser on a login key collision; the
	// database unique index arbitrates concurrent registrations.
	CreateUser(ctx context.Context, user *models.User) (string, error)

	// ValidateCredentials checks a login/password pair.
	// Unknown login and wrong password both return
	// models.ErrInvalidCredentials with no distinguishing signal.
	ValidateCredentials(ctx context.Context, login, password string) (*models.User, error)

	// UpdateLastLogin records the time of a successful login.
	UpdateLastLogin(ctx context.Context, login string, timestamp time.Time) error
}

// ProductStore defines catalog persistence.
type ProductStore interface {
	// CreateProduct persists a new product and returns its id.
	CreateProduct(ctx context.Context, product *models.Product) (string, error)

	// GetProduct retrieves a product by id.
	// Returns models.ErrProductNotFound if no such product exists.
	GetProduct(ctx context.Context, id string) (*models.Product, error)

	// ListProducts returns the full catalog.
	ListProducts(ctx context.Context) ([]*models.Product, error)

	// ListProductsByUser returns products created by the given user.
	ListProductsByUser(ctx context.Context, userID string) ([]*models.Product, error)
}

// OrderStore defines order persistence.
type OrderStore interface {
	// CreateOrder persists a new order linked to the given product ids
	// and returns its id. Returns models.ErrProductNotFound if any
	// product id is unknown.
	CreateOrder(ctx context.Context, order *models.Order, productIDs []string) (string, error)

	// GetOrder retrieves an order by id, with its products preloaded.
	// Returns models.ErrOrderNotFound if no such order exists.
	// Ownership is checked by the caller, not here.
	GetOrder(ctx context.Context, id string) (*models.Order, error)

	// ListOrdersByUser returns orders placed by the given user, with
	// products preloaded.
	ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error)

	// ListOrdersWithProduct returns the given user's orders that
	// contain the given product.
	ListOrdersWithProduct(ctx context.Context, userID, productID string) ([]*models.Order, error)
}

// Store is the full persistence interface.
type Store interface {
	UserStore
	ProductStore
	OrderStore

	// Ping checks connectivity for readiness probes.
	Ping(ctx context.Context) error

	// Close releases the underlying database connection.
	Close() error
}

// Compile-time interface check.
var _ Store = (*GORMStore)(nil)
