package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mcordovar/datacenter-access/internal/api/dto"
	"github.com/mcordovar/datacenter-access/internal/auth"
	"github.com/mcordovar/datacenter-access/internal/registry"
	"github.com/mcordovar/datacenter-access/pkg/util"
)

// AuthHandler manages operator login.
type AuthHandler struct {
	store  *registry.Store
	tokens *auth.TokenManager
	logger *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(store *registry.Store, tokens *auth.TokenManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens, logger: logger}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return util.NewValidationError("username and password required", nil)
	}

	user, err := h.store.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		// the login itself succeeded when user is set; only the write failed
		if user == nil {
			return err
		}
		h.logger.Warn("login persisted state diverged", zap.Error(err))
	}
	if user == nil {
		return util.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := h.tokens.GenerateToken(user)
	if err != nil {
		return util.NewInternalError(err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"data": dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.FromUser(user),
	}})
}
