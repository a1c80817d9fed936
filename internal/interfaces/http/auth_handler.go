package http

import (
	"errors"
	"strings"
	"time"

	"github.com/farmdesk/farmdesk-api/internal/application/auth"
	"github.com/farmdesk/farmdesk-api/internal/application/dto"
	"github.com/farmdesk/farmdesk-api/internal/domain"
	"github.com/farmdesk/farmdesk-api/pkg/config"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler maneja login de admins y officers, logout y consulta de identidad.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie config.CookieConfig
	ttl    time.Duration
}

// NewAuthHandler crea un nuevo handler de autenticación.
func NewAuthHandler(uc *auth.AuthUseCase, cookie config.CookieConfig, ttl time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, ttl: ttl}
}

// AdminLogin maneja POST /admin/login.
// El contrato distingue causa de fallo: empresa o usuario inexistente (401),
// usuario sin rol Admin (403), contraseña incorrecta (401).
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	in, ok := parseLogin(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing required fields"})
	}

	token, err := h.uc.LoginAdmin(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "User Not Found"})
		case errors.Is(err, domain.ErrWrongRole):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Unauthorized role"})
		case errors.Is(err, domain.ErrBadCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Please Enter Correct Password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	h.setAuthCookie(c, token)
	return c.JSON(dto.MessageResponse{Message: "Login successful"})
}

// OfficerLogin maneja POST /officer/login.
// A diferencia del login de admin, no revela si falló la empresa, el usuario
// o el rol: todo colapsa en "User Not Found".
func (h *AuthHandler) OfficerLogin(c *fiber.Ctx) error {
	in, ok := parseLogin(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing required fields"})
	}

	token, err := h.uc.LoginOfficer(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "User Not Found"})
		case errors.Is(err, domain.ErrBadCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Please Enter Correct Password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	h.setAuthCookie(c, token)
	return c.JSON(dto.MessageResponse{Message: "Login successful"})
}

// Me maneja GET /api/auth/me: resuelve el token actual contra la base y
// devuelve la identidad vigente (sin hash de contraseña).
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ident, err := h.uc.ResolveIdentity(c.Context(), TokenFromRequest(c, h.cookie.Name))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingToken):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Missing token"})
		case errors.Is(err, domain.ErrMalformedToken):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid token"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "User not found"})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid or expired token"})
	}
	return c.JSON(ident)
}

// Logout maneja POST /api/auth/logout: expira la cookie de sesión.
// El token en sí no se revoca; el cliente simplemente deja de enviarlo.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearAuthCookie(c)
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}

// parseLogin decodifica y recorta los campos del body de login.
// ok es false si falta company_id, username o password.
func parseLogin(c *fiber.Ctx) (dto.LoginRequest, bool) {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return in, false
	}
	in.CompanyID = strings.TrimSpace(in.CompanyID)
	in.Username = strings.TrimSpace(in.Username)
	if in.CompanyID == "" || in.Username == "" || in.Password == "" {
		return in, false
	}
	return in, true
}

func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	sameSite := h.cookie.SameSite
	if h.cookie.Secure {
		// Login cross-origin desde el frontend: SameSite=None exige Secure.
		sameSite = "None"
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     h.cookie.Path,
		Expires:  time.Now().Add(h.ttl),
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: sameSite,
	})
}

func (h *AuthHandler) clearAuthCookie(c *fiber.Ctx) {
	sameSite := h.cookie.SameSite
	if h.cookie.Secure {
		sameSite = "None"
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     h.cookie.Path,
		Expires:  time.Unix(0, 0),
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: sameSite,
	})
}
