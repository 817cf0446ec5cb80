package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marmos91/storefront/pkg/models"
)

func (s *GORMStore) CreateOrder(ctx context.Context, order *models.Order, productIDs []string) (string, error) {
	if err := order.Validate(); err != nil {
		return "", err
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Date.IsZero() {
		order.Date = time.Now()
	}
	order.CreatedAt = time.Now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Resolve all referenced products first so an unknown id fails
		// the whole order instead of creating a partial one.
		var products []models.Product
		if len(productIDs) > 0 {
			if err := tx.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
				return err
			}
			if len(products) != len(uniqueStrings(productIDs)) {
				return models.ErrProductNotFound
			}
		}
		order.Products = products

		if err := tx.Create(order).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.ErrDuplicateOrder
			}
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return order.ID, nil
}

func (s *GORMStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return getByField[models.Order](s.db, ctx, "id", id, models.ErrOrderNotFound, "Products")
}

func (s *GORMStore) ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	return listByField[models.Order](s.db, ctx, "user_id", userID, "Products")
}

func (s *GORMStore) ListOrdersWithProduct(ctx context.Context, userID, productID string) ([]*models.Order, error) {
	var orders []*models.Order
	err := s.db.WithContext(ctx).
		Preload("Products").
		Joins("JOIN order_products ON order_products.order_id = orders.id").
		Where("orders.user_id = ? AND order_products.product_id = ?", userID, productID).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*models.Order{}
	}
	return orders, nil
}

// uniqueStrings returns the distinct values of in, preserving order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
