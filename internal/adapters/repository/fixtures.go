package repository

import (
	"context"
	"time"

	"github.com/elijahokolo60-dotcom/swagger-api/internal/domain/model"
)

// Fixture identity constants.
const (
	// KnownUserID is the only user id that resolves on reads.
	KnownUserID = 1
)

func strptr(s string) *string { return &s }

// FixtureCatalog serves hard-coded example records. Each accessor builds
// its result fresh so callers can never observe shared mutable state.
type FixtureCatalog struct {
	now func() time.Time
}

// Option applies a configuration option to the FixtureCatalog.
type Option func(*FixtureCatalog)

// WithClock overrides the timestamp source used for created_at fields.
func WithClock(now func() time.Time) Option {
	return func(c *FixtureCatalog) {
		if now != nil {
			c.now = now
		}
	}
}

// NewFixtureCatalog creates a catalog backed by the fixed example records.
func NewFixtureCatalog(opts ...Option) *FixtureCatalog {
	c := &FixtureCatalog{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// knownUser builds the single fixture user with a fresh timestamp.
func (c *FixtureCatalog) knownUser() model.UserView {
	return model.UserView{
		Profile: model.Profile{
			Email:    "john@example.com",
			FullName: strptr("John Doe"),
		},
		ID:        KnownUserID,
		IsActive:  true,
		CreatedAt: c.now(),
	}
}

// Users returns every known user record.
func (c *FixtureCatalog) Users(_ context.Context) []model.UserView {
	return []model.UserView{c.knownUser()}
}

// UserByID returns the record for id, or ErrUserNotFound.
func (c *FixtureCatalog) UserByID(_ context.Context, id int) (model.UserView, error) {
	if id != KnownUserID {
		return model.UserView{}, ErrUserNotFound
	}
	return c.knownUser(), nil
}

// Products returns the two-item catalog, filtered by exact case-sensitive
// category match when category is non-empty.
func (c *FixtureCatalog) Products(_ context.Context, category string) []model.Product {
	all := []model.Product{
		{ID: 1, Name: "Laptop", Price: 999.99, Category: strptr("Electronics")},
		{ID: 2, Name: "Book", Price: 19.99, Category: strptr("Books")},
	}
	if category == "" {
		return all
	}
	filtered := make([]model.Product, 0, len(all))
	for _, p := range all {
		if p.Category != nil && *p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// UserCount reports the number of fixture users.
func (c *FixtureCatalog) UserCount(_ context.Context) int { return 1 }

// ProductCount reports the number of fixture products.
func (c *FixtureCatalog) ProductCount(_ context.Context) int { return 2 }
