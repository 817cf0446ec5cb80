package store

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/marmos91/storefront/pkg/models"
)

// SeedResult reports what a Seed run created.
type SeedResult struct {
	Users    int
	Products int
}

var seedProductNames = []string{
	"Walnut Desk Organizer",
	"Ceramic Pour-Over Kettle",
	"Linen Throw Blanket",
	"Brass Reading Lamp",
	"Canvas Weekender Bag",
	"Cast Iron Skillet",
	"Bamboo Cutting Board",
	"Wool Felt Laptop Sleeve",
	"Stoneware Mug Set",
	"Leather Journal",
}

// Seed populates the store with demo users and products for local
// development. Users are named user1..userN with password "password"
// and are skipped if they already exist, so Seed is safe to re-run.
func Seed(ctx context.Context, s Store, userCount, productCount int) (*SeedResult, error) {
	result := &SeedResult{}

	users := make([]*models.User, 0, userCount)
	for i := 1; i <= userCount; i++ {
		login := fmt.Sprintf("user%d@example.com", i)

		existing, err := s.GetUserByLogin(ctx, login)
		if err == nil {
			users = append(users, existing)
			continue
		}
		if !errors.Is(err, models.ErrUserNotFound) {
			return nil, err
		}

		hash, err := models.HashPassword("password")
		if err != nil {
			return nil, err
		}
		user := &models.User{Login: login, PasswordHash: hash}
		if _, err := s.CreateUser(ctx, user); err != nil {
			return nil, err
		}
		users = append(users, user)
		result.Users++
	}

	if len(users) == 0 {
		return result, nil
	}

	for i := 1; i <= productCount; i++ {
		name := seedProductNames[(i-1)%len(seedProductNames)]
		product := &models.Product{
			Name:        fmt.Sprintf("%s #%d", name, i),
			Description: fmt.Sprintf("Demo catalog item %d", i),
			Price:       float64(rand.Intn(9900)+100) / 100, // 1.00 - 99.99
			UserID:      users[rand.Intn(len(users))].ID,
		}
		if _, err := s.CreateProduct(ctx, product); err != nil {
			return nil, err
		}
		result.Products++
	}

	return result, nil
}
