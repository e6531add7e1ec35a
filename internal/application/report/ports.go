package report

import (
	"context"

	"github.com/gyt-equipos/panol-api/internal/domain/stock"
)

// Header membrete del reporte (empresa y sector), tomado de configuración.
type Header struct {
	CompanyName string
	DeptName    string
}

// PDFGenerator puerto de renderizado: convierte el ReportModel en un PDF
// paginado. La implementación (Maroto) vive en infraestructura.
type PDFGenerator interface {
	GenerateReportPDF(ctx context.Context, model stock.ReportModel, header Header) ([]byte, error)
}
