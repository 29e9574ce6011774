// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/elijahokolo60-dotcom/swagger-api/internal/adapters/repository"
	"github.com/elijahokolo60-dotcom/swagger-api/internal/domain/model"
	"github.com/elijahokolo60-dotcom/swagger-api/pkg/logger"
	"github.com/elijahokolo60-dotcom/swagger-api/pkg/metrics"
)

// Default identity constants.
const (
	// defaultCreatedUserID is the id assigned to every created user.
	defaultCreatedUserID = 2
)

// Service implements the API dependencies over the fixture catalog.
// Handlers are pure: no call depends on state left by a prior request.
type Service struct {
	mu sync.RWMutex

	catalog       repository.Catalog
	createdUserID int
	now           func() time.Time

	// State
	started   bool
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets the logger used by the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalog sets the record source backing the service.
func WithCatalog(c repository.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCreatedUserID sets the id assigned on user creation.
func WithCreatedUserID(id int) Option {
	return func(s *Service) {
		if id > 0 {
			s.createdUserID = id
		}
	}
}

// New creates a Service with the provided options.
func New(opts ...Option) *Service {
	s := &Service{
		catalog:       repository.NewFixtureCatalog(),
		createdUserID: defaultCreatedUserID,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start marks the service as running. The facade holds no resources that
// need warming, so this only records lifecycle state.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}
	s.started = true
	s.startedAt = s.now()
	if s.logger != nil {
		s.logger.Info(ctx, "service started",
			logger.Int("users", s.catalog.UserCount(ctx)),
			logger.Int("products", s.catalog.ProductCount(ctx)),
		)
	}
	return nil
}

// Stop marks the service as stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// Health reports the liveness payload for GET /.
func (s *Service) Health(_ context.Context) (string, time.Time) {
	return "healthy", s.now()
}

// ListUsers returns the user records. The skip and limit arguments are
// accepted for contract compatibility but are not applied to the fixture
// list.
func (s *Service) ListUsers(ctx context.Context, _, _ int) ([]model.UserView, error) {
	metrics.RecordUserOperation("list")
	return s.catalog.Users(ctx), nil
}

// GetUser returns the record for id, or the catalog's not-found error.
func (s *Service) GetUser(ctx context.Context, id int) (model.UserView, error) {
	metrics.RecordUserOperation("get")
	return s.catalog.UserByID(ctx, id)
}

// CreateUser synthesizes the created record. The password is discarded and
// no uniqueness check runs.
func (s *Service) CreateUser(ctx context.Context, u model.NewUser) (model.UserView, error) {
	metrics.RecordUserOperation("create")
	if s.logger != nil {
		s.logger.Debug(ctx, "user created", logger.String("email", u.Email), logger.Int("id", s.createdUserID))
	}
	return model.UserView{
		Profile:   u.Profile,
		ID:        s.createdUserID,
		IsActive:  true,
		CreatedAt: s.now(),
	}, nil
}

// UpdateUser echoes the requested id and profile. There is no existence
// check: any id succeeds.
func (s *Service) UpdateUser(ctx context.Context, id int, p model.Profile) (model.UserView, error) {
	metrics.RecordUserOperation("update")
	return model.UserView{
		Profile:   p,
		ID:        id,
		IsActive:  true,
		CreatedAt: s.now(),
	}, nil
}

// DeleteUser acknowledges deletion. Nothing is deleted and there is no
// existence check.
func (s *Service) DeleteUser(ctx context.Context, id int) error {
	metrics.RecordUserOperation("delete")
	if s.logger != nil {
		s.logger.Debug(ctx, "user delete acknowledged", logger.Int("id", id))
	}
	return nil
}

// ListProducts returns the catalog, filtered by exact category match when
// category is non-empty.
func (s *Service) ListProducts(ctx context.Context, category string) ([]model.Product, error) {
	metrics.RecordProductQuery()
	return s.catalog.Products(ctx, category), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":  s.started,
		"users":    s.catalog.UserCount(ctx),
		"products": s.catalog.ProductCount(ctx),
	}
	if s.started {
		stats["uptime_sec"] = s.now().Sub(s.startedAt).Seconds()
	}
	return stats
}
