package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	errors "github.com/frahmantamala/asset-inventory/internal"
	"github.com/frahmantamala/asset-inventory/internal/transport"
	"github.com/frahmantamala/asset-inventory/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*LoginResult, error)
	ValidateToken(tokenString string) (*Claims, error)
	CurrentActor(userID string) (*User, error)
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

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.Authenticate(dto)
	if err != nil {
		if _, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.WriteDomainError(w, err, "authentication failed")
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

// AuthMiddleware authenticates every protected request from scratch: bearer
// token present and well-formed, signature and expiry valid, then the
// referenced user reloaded and required to be active. Identity and role for
// downstream checks come from the live record, not the token.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateToken(token)
		if err != nil {
			h.WriteDomainError(w, err, "token validation failed")
			return
		}

		actor, err := h.Service.CurrentActor(claims.UserID)
		if err != nil {
			h.WriteDomainError(w, err, "actor lookup failed")
			return
		}

		ctx := ContextWithUser(r.Context(), actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route group on a minimum privilege level.
func (h *Handler) RequireRole(min Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := UserFromContext(r.Context())
			if !ok || actor == nil {
				h.WriteError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			if !actor.Role.AtLeast(min) {
				h.Logger.Warn("access denied: insufficient role",
					"user_id", actor.ID,
					"role", actor.Role,
					"required", min)
				status, body := errors.ErrInsufficientRole.ToHTTPResponse()
				h.WriteJSON(w, status, body)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
