package stock

import (
	"time"

	"github.com/gyt-equipos/panol-api/internal/domain/entity"
)

// Títulos de sección del reporte de reposición.
const (
	SectionCritical = "STOCK CRÍTICO"
	SectionAtLimit  = "EN LÍMITE"
)

// ReportRow una fila del reporte. Shortfall es lo que falta comprar para
// volver al mínimo (0 en filas "en límite", donde stock == mínimo).
type ReportRow struct {
	Code        string
	Description string
	Group       string
	Quantity    int
	Minimum     int
	Shortfall   int
}

// ReportSection una tabla del reporte con su encabezado.
type ReportSection struct {
	Title string
	Rows  []ReportRow
}

// ReportModel proyección inmutable que consume el renderer de PDF.
// Las filas conservan el orden de los items de origen (sin ordenar), para que
// dos exportaciones del mismo estado produzcan el mismo documento.
type ReportModel struct {
	GeneratedAt string // dd/mm/aaaa hh:mm
	Critical    ReportSection
	AtLimit     ReportSection
}

// BuildReport arma el reporte a partir de los grupos del clasificador.
// minimumFor vuelve a resolver el umbral por item; el builder no guarda estado.
func BuildReport(critical, atLimit []entity.Item, minimumFor func(entity.Item) int, now time.Time) ReportModel {
	criticalRows := make([]ReportRow, 0, len(critical))
	for _, item := range critical {
		min := minimumFor(item)
		shortfall := min - item.Quantity
		if shortfall < 0 {
			shortfall = 0
		}
		criticalRows = append(criticalRows, ReportRow{
			Code:        item.Code,
			Description: item.Description,
			Group:       entity.GroupOf(item.ComponentType),
			Quantity:    item.Quantity,
			Minimum:     min,
			Shortfall:   shortfall,
		})
	}

	atLimitRows := make([]ReportRow, 0, len(atLimit))
	for _, item := range atLimit {
		atLimitRows = append(atLimitRows, ReportRow{
			Code:        item.Code,
			Description: item.Description,
			Group:       entity.GroupOf(item.ComponentType),
			Quantity:    item.Quantity,
			Minimum:     minimumFor(item),
			Shortfall:   0, // en límite: stock == mínimo
		})
	}

	return ReportModel{
		GeneratedAt: now.Format("02/01/2006 15:04"),
		Critical:    ReportSection{Title: SectionCritical, Rows: criticalRows},
		AtLimit:     ReportSection{Title: SectionAtLimit, Rows: atLimitRows},
	}
}
