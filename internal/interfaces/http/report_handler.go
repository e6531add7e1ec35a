package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gyt-equipos/panol-api/internal/application/dto"
	"github.com/gyt-equipos/panol-api/internal/application/report"
)

// ReportHandler exporta el reporte de reposición de stock crítico (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CriticalStock godoc
// @Summary      Exportar el reporte de reposición de stock crítico en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/critical-stock [get]
func (h *ReportHandler) CriticalStock(c *fiber.Ctx) error {
	filename, pdfBytes, err := h.uc.CriticalStockPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
