package http

import (
	"strings"

	"github.com/farmdesk/farmdesk-api/internal/application/auth"
	"github.com/farmdesk/farmdesk-api/internal/application/dto"
	"github.com/farmdesk/farmdesk-api/internal/domain/entity"
	"github.com/gofiber/fiber/v2"
)

// Local key para la identidad resuelta en Fiber.
const LocalIdentity = "identity"

// TokenFromRequest extrae el token: primero la cookie de sesión, después el
// header Authorization Bearer. Devuelve "" si no hay ninguno.
func TokenFromRequest(c *fiber.Ctx, cookieName string) string {
	if tok := c.Cookies(cookieName); tok != "" {
		return tok
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AuthMiddleware resuelve la identidad del token y la guarda en c.Locals.
// Cualquier fallo (token ausente, inválido, expirado, empleado inexistente)
// corta con 401 sin filtrar detalles.
func AuthMiddleware(authUC *auth.AuthUseCase, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := authUC.ResolveIdentity(c.Context(), TokenFromRequest(c, cookieName))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
		}
		c.Locals(LocalIdentity, ident)
		return c.Next()
	}
}

// RequireRole autoriza por rol normalizado. Debe usarse DESPUÉS de
// AuthMiddleware (necesita la identidad en Locals); responde 403 si el rol no
// está en el conjunto permitido.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[entity.NormalizeRole(r, entity.RoleAdmin)] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		ident := GetIdentity(c)
		if ident == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
		}
		if _, ok := allowed[ident.Role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Forbidden"})
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) *dto.Identity {
	ident, _ := c.Locals(LocalIdentity).(*dto.Identity)
	return ident
}
