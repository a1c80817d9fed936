package http

import (
	"errors"
	"strings"

	"github.com/farmdesk/farmdesk-api/internal/application/dto"
	"github.com/farmdesk/farmdesk-api/internal/application/usecase"
	"github.com/farmdesk/farmdesk-api/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// SuperadminHandler expone el alta inicial de administradores de empresa.
// La ruta es deliberadamente pública: es el bootstrap del sistema.
type SuperadminHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewSuperadminHandler crea un nuevo handler de superadmin.
func NewSuperadminHandler(uc *usecase.EmployeeUseCase) *SuperadminHandler {
	return &SuperadminHandler{uc: uc}
}

// CreateAdmin maneja POST /superadmin/create_admin.
// Crea la empresa si no existe; si existe, añade el admin a su plantilla.
func (h *SuperadminHandler) CreateAdmin(c *fiber.Ctx) error {
	var in dto.CreateAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing required fields"})
	}
	in.Username = strings.TrimSpace(in.Username)
	in.CompanyID = strings.TrimSpace(in.CompanyID)
	if in.Username == "" || in.Password == "" || in.CompanyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing required fields"})
	}

	id, err := h.uc.BootstrapAdmin(c.Context(), in.CompanyID, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Username already exists in this company"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{
		Message: "Company admin created successfully",
		ID:      id,
	})
}
