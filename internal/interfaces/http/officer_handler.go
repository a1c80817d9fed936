package http

import (
	"errors"
	"strings"

	"github.com/farmdesk/farmdesk-api/internal/application/dto"
	"github.com/farmdesk/farmdesk-api/internal/application/usecase"
	"github.com/farmdesk/farmdesk-api/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// OfficerHandler maneja el CRUD de officers del tenant del admin autenticado.
// El company_id sale siempre de la identidad resuelta, nunca del request.
type OfficerHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewOfficerHandler crea un nuevo handler de officers.
func NewOfficerHandler(uc *usecase.EmployeeUseCase) *OfficerHandler {
	return &OfficerHandler{uc: uc}
}

// List maneja GET /admin/officers.
func (h *OfficerHandler) List(c *fiber.Ctx) error {
	ident := GetIdentity(c)
	items, err := h.uc.ListOfficers(c.Context(), ident.CompanyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.OfficerListResponse{Items: items})
}

// Create maneja POST /admin/officers.
func (h *OfficerHandler) Create(c *fiber.Ctx) error {
	ident := GetIdentity(c)

	var in dto.CreateOfficerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Username and password are required"})
	}
	in.Username = strings.TrimSpace(in.Username)
	in.Password = strings.TrimSpace(in.Password)
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Username and password are required"})
	}

	id, err := h.uc.CreateOfficer(c.Context(), ident.CompanyID, in.Username, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Company not found"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Username already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Message: "Officer created", ID: id})
}

// Delete maneja DELETE /admin/officers/:id.
// Solo elimina empleados con rol Officer; los ids de admins devuelven 404.
func (h *OfficerHandler) Delete(c *fiber.Ctx) error {
	ident := GetIdentity(c)

	err := h.uc.DeleteOfficer(c.Context(), ident.CompanyID, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Company not found"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Officer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.MessageResponse{Message: "Officer deleted"})
}
