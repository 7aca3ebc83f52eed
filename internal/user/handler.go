package user

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/asset-inventory/internal/auth"
	"github.com/frahmantamala/asset-inventory/internal/transport"
	"github.com/frahmantamala/asset-inventory/pkg/logger"
)

type ServiceAPI interface {
	Register(dto RegisterDTO) (*User, error)
	GetByID(id string) (*User, error)
	GetAll() ([]*User, error)
	UpdateProfile(id string, dto UpdateProfileDTO) (*User, error)
	AdminUpdate(id string, dto AdminUpdateUserDTO) (*User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// GetCurrentUser handles GET /auth/me.
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.Service.GetByID(actor.ID)
	if err != nil {
		h.WriteDomainError(w, err, "failed to load current user")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": u})
}

// UpdateCurrentUser handles PUT /auth/me.
func (h *Handler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.UserFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.UpdateProfile(actor.ID, dto)
	if err != nil {
		h.WriteDomainError(w, err, "failed to update profile")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": u})
}

// Register handles POST /auth/register (admin only).
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.Register(dto)
	if err != nil {
		h.WriteDomainError(w, err, "registration failed")
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{"data": u})
}

// ListUsers handles GET /auth/users (admin only).
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAll()
	if err != nil {
		h.WriteDomainError(w, err, "failed to list users")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": users})
}

// UpdateUser handles PUT /auth/users/{id} (admin only).
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, "user id is required")
		return
	}

	var dto AdminUpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.AdminUpdate(id, dto)
	if err != nil {
		h.WriteDomainError(w, err, "failed to update user")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": u})
}
