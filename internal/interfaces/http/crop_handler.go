package http

import (
	"errors"
	"net/url"
	"strings"

	"github.com/farmdesk/farmdesk-api/internal/application/dto"
	"github.com/farmdesk/farmdesk-api/internal/application/usecase"
	"github.com/farmdesk/farmdesk-api/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// CropHandler maneja el catálogo de cultivos del tenant del admin autenticado.
type CropHandler struct {
	uc *usecase.CropUseCase
}

// NewCropHandler crea un nuevo handler de cultivos.
func NewCropHandler(uc *usecase.CropUseCase) *CropHandler {
	return &CropHandler{uc: uc}
}

// List maneja GET /admin/crops. La primera lectura de una empresa materializa
// su catálogo vacío.
func (h *CropHandler) List(c *fiber.Ctx) error {
	ident := GetIdentity(c)
	items, err := h.uc.List(c.Context(), ident.CompanyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.CropListResponse{CropDetails: items})
}

// Add maneja POST /admin/crops.
func (h *CropHandler) Add(c *fiber.Ctx) error {
	ident := GetIdentity(c)

	name, rate, msg := cropInput(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
	}

	crop, err := h.uc.Add(c.Context(), ident.CompanyID, ident.Username, name, rate)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Crop already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CropResponse{Message: "Crop added successfully", Crop: *crop})
}

// Update maneja PUT /admin/crops/:crop_name. El parámetro de ruta identifica
// la entrada por nombre exacto; el body trae el nombre nuevo y la tarifa.
func (h *CropHandler) Update(c *fiber.Ctx) error {
	ident := GetIdentity(c)
	oldName := cropNameParam(c)

	newName, rate, msg := cropInput(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
	}

	crop, err := h.uc.Update(c.Context(), ident.CompanyID, ident.Username, oldName, newName, rate)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No crops found for this company"})
		case errors.Is(err, domain.ErrCropNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Crop not found"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "Crop name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.CropResponse{Message: "Crop updated successfully", Crop: *crop})
}

// Delete maneja DELETE /admin/crops/:crop_name.
func (h *CropHandler) Delete(c *fiber.Ctx) error {
	ident := GetIdentity(c)

	err := h.uc.Delete(c.Context(), ident.CompanyID, cropNameParam(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No crops found for this company"})
		case errors.Is(err, domain.ErrCropNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Crop not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(dto.MessageResponse{Message: "Crop deleted successfully"})
}

// cropInput decodifica y valida el body de alta/edición de cultivo.
// Devuelve el mensaje de error exacto del contrato cuando la entrada no vale:
// campos ausentes, tarifa no numérica o tarifa negativa (cero se acepta).
func cropInput(c *fiber.Ctx) (name string, rate float64, msg string) {
	var in dto.CropRequest
	if err := c.BodyParser(&in); err != nil {
		return "", 0, "Crop name and rate per unit are required"
	}
	name = strings.TrimSpace(in.CropName)
	if name == "" || !in.RatePerUnit.Set {
		return "", 0, "Crop name and rate per unit are required"
	}
	if !in.RatePerUnit.Valid {
		return "", 0, "Invalid rate per unit"
	}
	if in.RatePerUnit.Value < 0 {
		return "", 0, "Rate per unit must be positive"
	}
	return name, in.RatePerUnit.Value, ""
}

// cropNameParam devuelve el crop_name de la ruta decodificado (los nombres
// pueden llevar espacios u otros caracteres escapados en la URL).
func cropNameParam(c *fiber.Ctx) string {
	raw := c.Params("crop_name")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
