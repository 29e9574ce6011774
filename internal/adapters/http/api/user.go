// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/elijahokolo60-dotcom/swagger-api/internal/domain/model"
)

// UserDependencies defines the interface for single-user operations.
type UserDependencies interface {
	GetUser(ctx context.Context, id int) (model.UserView, error)
	UpdateUser(ctx context.Context, id int, p model.Profile) (model.UserView, error)
	DeleteUser(ctx context.Context, id int) error
}

// UserHandler handles /users/{user_id} requests.
type UserHandler struct {
	deps UserDependencies
}

// NewUserHandler creates a new single-user handler.
func NewUserHandler(deps UserDependencies) *UserHandler {
	return &UserHandler{deps: deps}
}

// userID extracts and validates the path parameter after /users/.
// A malformed or non-positive id is a validation failure, not a 404.
func userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	path := strings.TrimPrefix(r.URL.Path, "/users/")
	if path == "" || strings.Contains(path, "/") {
		writeError(w, http.StatusNotFound, "not_found", ErrRouteNotFound)
		return 0, false
	}
	id, err := strconv.Atoi(path)
	if err != nil {
		writeValidation(w, model.FieldErrors{{Field: "user_id", Message: "must be an integer"}})
		return 0, false
	}
	if id <= 0 {
		writeValidation(w, model.FieldErrors{{Field: "user_id", Message: "must be greater than 0"}})
		return 0, false
	}
	return id, true
}

// HandleUser dispatches GET, PUT and DELETE on /users/{user_id}.
func (h *UserHandler) HandleUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, id)
	case http.MethodPut:
		h.handleUpdate(w, r, id)
	case http.MethodDelete:
		h.handleDelete(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodNotAllowed)
	}
}

// handleGet handles GET /users/{user_id}. Only the fixture id resolves.
func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request, id int) {
	user, err := h.deps.GetUser(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// handleUpdate handles PUT /users/{user_id}. There is no existence check;
// any id succeeds and the body is echoed back.
func (h *UserHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id int) {
	var req model.Profile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidation(w, model.FieldErrors{{Field: "body", Message: "invalid JSON payload"}})
		return
	}
	if fields := req.Validate(); fields != nil {
		writeValidation(w, fields)
		return
	}

	updated, err := h.deps.UpdateUser(r.Context(), id, req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleDelete handles DELETE /users/{user_id}. Nothing is deleted; the
// acknowledgement message is part of the contract.
func (h *UserHandler) handleDelete(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.deps.DeleteUser(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{
		Message: fmt.Sprintf("User %d deleted successfully", id),
	})
}
