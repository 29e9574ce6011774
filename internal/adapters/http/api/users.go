// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/elijahokolo60-dotcom/swagger-api/internal/domain/model"
)

// UsersDependencies defines the interface for user collection operations.
type UsersDependencies interface {
	ListUsers(ctx context.Context, skip, limit int) ([]model.UserView, error)
	CreateUser(ctx context.Context, u model.NewUser) (model.UserView, error)
}

// UsersHandler handles requests against the user collection.
type UsersHandler struct {
	deps         UsersDependencies
	defaultLimit int
	maxLimit     int
}

// NewUsersHandler creates a new user collection handler.
func NewUsersHandler(deps UsersDependencies, defaultLimit, maxLimit int) *UsersHandler {
	return &UsersHandler{deps: deps, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// HandleUsers dispatches GET /users and POST /users.
func (h *UsersHandler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodNotAllowed)
	}
}

// handleList handles GET /users?skip=N&limit=M. The paging parameters are
// parsed and validated but never applied to the mock record list.
func (h *UsersHandler) handleList(w http.ResponseWriter, r *http.Request) {
	skip, limit := 0, h.defaultLimit
	var fields model.FieldErrors

	if raw := r.URL.Query().Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, model.FieldError{Field: "skip", Message: "must be an integer"})
		} else {
			skip = n
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, model.FieldError{Field: "limit", Message: "must be an integer"})
		} else {
			limit = n
		}
	}
	if fields != nil {
		writeValidation(w, fields)
		return
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	users, err := h.deps.ListUsers(r.Context(), skip, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// handleCreate handles POST /users. The password is validated, then
// discarded; the created record carries a fixed id.
func (h *UsersHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.NewUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidation(w, model.FieldErrors{{Field: "body", Message: "invalid JSON payload"}})
		return
	}
	if fields := req.Validate(); fields != nil {
		writeValidation(w, fields)
		return
	}

	created, err := h.deps.CreateUser(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
