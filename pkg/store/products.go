package store

import (
	"context"
	"time"

	"github.com/marmos91/storefront/pkg/models"
)

func (s *GORMStore) CreateProduct(ctx context.Context, product *models.Product) (string, error) {
	if err := product.Validate(); err != nil {
		return "", err
	}
	product.CreatedAt = time.Now()
	return createWithID(s.db, ctx, product, func(p *models.Product, id string) { p.ID = id }, product.ID, models.ErrDuplicateProduct)
}

func (s *GORMStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return getByField[models.Product](s.db, ctx, "id", id, models.ErrProductNotFound)
}

func (s *GORMStore) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return listAll[models.Product](s.db, ctx)
}

func (s *GORMStore) ListProductsByUser(ctx context.Context, userID string) ([]*models.Product, error) {
	return listByField[models.Product](s.db, ctx, "user_id", userID)
}
