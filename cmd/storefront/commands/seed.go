package commands

import (
	"context"
	"fmt"

	"github.com/marmos91/storefront/pkg/config"
	"github.com/marmos91/storefront/pkg/store"
	"github.com/spf13/cobra"
)

var (
	seedUsers    int
	seedProducts int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with demo data",
	Long: `Populate the configured database with demo users and products
for local development.

Seeded users are named user1@example.com, user2@example.com, ... with
password "password". Re-running seed skips users that already exist.

Examples:
  # Seed with defaults (3 users, 12 products)
  storefront seed

  # Seed a larger catalog
  storefront seed --users 10 --products 50`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedUsers, "users", 3, "Number of demo users to create")
	seedCmd.Flags().IntVar(&seedProducts, "products", 12, "Number of demo products to create")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	if err := InitLogger(cfg); err != nil {
		return err
	}

	st, err := store.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() { _ = st.Close() }()

	result, err := store.Seed(context.Background(), st, seedUsers, seedProducts)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	fmt.Printf("Seed complete: %d users and %d products created\n", result.Users, result.Products)
	if result.Users > 0 {
		fmt.Println("Demo credentials: user1@example.com / password")
	}

	return nil
}
