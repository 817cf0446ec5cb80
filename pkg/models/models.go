package models

// AllModels returns all models for database migration.
// The order matters: tables referenced by foreign keys come first.
func AllModels() []any {
	return []any{
		&User{},
		&Product{},
		&Order{},
	}
}
