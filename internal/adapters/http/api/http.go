// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/elijahokolo60-dotcom/swagger-api/internal/domain/model"
	"github.com/elijahokolo60-dotcom/swagger-api/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Health reports the liveness payload for GET /.
	Health(ctx context.Context) (status string, ts time.Time)

	// User operations. Writes are mock acknowledgements; no store is touched.
	ListUsers(ctx context.Context, skip, limit int) ([]model.UserView, error)
	GetUser(ctx context.Context, id int) (model.UserView, error)
	CreateUser(ctx context.Context, u model.NewUser) (model.UserView, error)
	UpdateUser(ctx context.Context, id int, p model.Profile) (model.UserView, error)
	DeleteUser(ctx context.Context, id int) error

	// Product operations.
	ListProducts(ctx context.Context, category string) ([]model.Product, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	usersHandler    *UsersHandler
	userHandler     *UserHandler
	productsHandler *ProductsHandler
	statsHandler    *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, defaultLimit, maxLimit int) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(deps),
		usersHandler:    NewUsersHandler(deps, defaultLimit, maxLimit),
		userHandler:     NewUserHandler(deps),
		productsHandler: NewProductsHandler(deps),
		statsHandler:    NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/users/", MetricsMiddleware(s.userHandler.HandleUser, "user"))
	mux.HandleFunc("/users", MetricsMiddleware(s.usersHandler.HandleUsers, "users"))
	mux.HandleFunc("/products", MetricsMiddleware(s.productsHandler.HandleGetProducts, "products"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	// The root pattern also catches every unmatched path.
	mux.HandleFunc("/", MetricsMiddleware(s.healthHandler.HandleHealth, "health"))
}

// deleteResponse acknowledges a user deletion.
type deleteResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// validationResponse carries field-level detail for rejected requests.
type validationResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  model.FieldErrors `json:"fields"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeValidation reports a request-validation failure with per-field detail.
// The facade follows the framework-standard 422 for these.
func writeValidation(w http.ResponseWriter, fields model.FieldErrors) {
	metrics.RecordValidationFailure()
	writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
		Code:    "validation_error",
		Message: "request validation failed",
		Fields:  fields,
	})
}

// isNotFound allows the API to translate upstream not-found errors to 404.
// This stays generic to avoid tight coupling with specific packages.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}
