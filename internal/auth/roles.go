package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mcordovar/datacenter-access/internal/domain"
	"github.com/mcordovar/datacenter-access/pkg/util"
)

// RequireRole ensures the principal holds one of the allowed roles. With no
// roles given it only requires authentication.
func RequireRole(allowed ...domain.UserRole) fiber.Handler {
	allowedSet := make(map[domain.UserRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return util.NewUnauthorized("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return util.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
