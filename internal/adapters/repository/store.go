// Package repository defines the mock record source interface and errors.
package repository

import (
	"context"

	"github.com/elijahokolo60-dotcom/swagger-api/internal/domain/model"
)

// Catalog provides read access to the mock records served by the facade.
// Records are synthesized per call; implementations hold no mutable state.
type Catalog interface {
	// Users returns every known user record.
	Users(ctx context.Context) []model.UserView

	// UserByID returns the record for id.
	// Returns ErrUserNotFound if the id is unknown.
	UserByID(ctx context.Context, id int) (model.UserView, error)

	// Products returns catalog entries, filtered by exact category match
	// when category is non-empty.
	Products(ctx context.Context, category string) []model.Product

	// UserCount and ProductCount report fixture sizes for stats.
	UserCount(ctx context.Context) int
	ProductCount(ctx context.Context) int
}
