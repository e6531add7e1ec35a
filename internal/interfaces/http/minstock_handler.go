package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gyt-equipos/panol-api/internal/application/dto"
	"github.com/gyt-equipos/panol-api/internal/application/usecase"
	"github.com/gyt-equipos/panol-api/internal/domain"
)

// MinStockHandler maneja las reglas de stock mínimo (protegido).
type MinStockHandler struct {
	uc *usecase.MinStockUseCase
}

// NewMinStockHandler construye el handler.
func NewMinStockHandler(uc *usecase.MinStockUseCase) *MinStockHandler {
	return &MinStockHandler{uc: uc}
}

// List godoc
// @Summary      Listar reglas de stock mínimo
// @Tags         minstock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MinStockListResponse
// @Router       /api/minstock [get]
func (h *MinStockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Fijar el umbral de una clave de alcance (reemplaza si ya existe)
// @Tags         minstock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetThresholdRequest  true  "Alcance y umbral"
// @Success      200   {object}  dto.MinStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/minstock [put]
func (h *MinStockHandler) Set(c *fiber.Ctx) error {
	var in dto.SetThresholdRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetThreshold(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "min_quantity debe ser >= 0"})
		case domain.ErrInvalidScope:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SCOPE", Message: "alcance inválido o incompleto"})
		case domain.ErrUnknownEquipment:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_EQUIPMENT", Message: "tipo de equipo fuera de catálogo"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "repuesto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar una regla de stock mínimo
// @Tags         minstock
// @Security     Bearer
// @Param        id  path  string  true  "ID de la regla"
// @Success      204  "Sin contenido"
// @Router       /api/minstock/{id} [delete]
func (h *MinStockHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
