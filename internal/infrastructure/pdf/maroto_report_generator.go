// Package pdf implementa la generación del reporte de reposición de stock
// crítico del pañol.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + Gerencia       │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TÍTULO: REPOSICIÓN DE STOCK CRÍTICO                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN: STOCK CRÍTICO                                     │
//	│  TABLA: Código | Descripción | Grupo | Stock | Mín | Falt.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN: EN LÍMITE                                         │
//	│  TABLA: Código | Descripción | Grupo | Stock | Mín | Falt.  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreport "github.com/gyt-equipos/panol-api/internal/application/report"
	"github.com/gyt-equipos/panol-api/internal/domain/stock"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorBrand = &props.Color{Red: 175, Green: 43, Blue: 30}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(
	_ context.Context,
	model stock.ReportModel,
	header appreport.Header,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reposición de Stock Crítico", true).
		WithAuthor(header.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	// Header institucional
	m.AddRows(headerRow(model, header))
	m.AddRows(line.NewRow(1, props.Line{Color: colorBrand, Thickness: 0.5}))
	m.AddRows(titleRow())

	// Secciones: primero crítico, después en límite
	addSection(m, model.Critical)
	m.AddRows(row.New(4))
	addSection(m, model.AtLimit)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + gerencia (izq) y fecha de generación (der).
func headerRow(model stock.ReportModel, header appreport.Header) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(header.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorBrand, Top: 1,
			}),
			text.New(header.DeptName, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado:", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorGray, Top: 2,
			}),
			text.New(model.GeneratedAt, props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

// titleRow: título central del reporte.
func titleRow() core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("REPOSICIÓN DE STOCK CRÍTICO", props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Center,
			Color: colorBrand, Top: 3,
		}),
	))
}

// addSection agrega el encabezado de sección y su tabla. Una sección vacía
// igual se imprime con su aviso (el documento siempre muestra ambas).
func addSection(m core.Maroto, section stock.ReportSection) {
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(section.Title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorBrand, Top: 2,
		}),
	)))

	if len(section.Rows) == 0 {
		m.AddRows(row.New(7).Add(col.New(12).Add(
			text.New("Sin items en esta condición.", props.Text{
				Size: 8, Color: colorGray, Top: 1, Left: 2,
			}),
		)))
		return
	}

	m.AddRows(tableHeaderRow())
	for i, r := range section.Rows {
		m.AddRows(tableRow(r, i%2 == 1))
	}
}

// tableHeaderRow: cabecera de la tabla con texto en blanco sobre la marca.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	r := row.New(8).Add(
		h("Código", 2, align.Left),
		h("Descripción", 4, align.Left),
		h("Grupo", 2, align.Left),
		h("Stock", 1, align.Center),
		h("Mínimo", 1, align.Center),
		h("Faltante", 2, align.Center),
	)
	r.WithStyle(&props.Cell{BackgroundColor: colorBrand})
	return r
}

// tableRow: una fila por item, con rayado alternado.
func tableRow(rr stock.ReportRow, striped bool) core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	r := row.New(7).Add(
		cell(rr.Code, 2, align.Left),
		cell(rr.Description, 4, align.Left),
		cell(rr.Group, 2, align.Left),
		cell(strconv.Itoa(rr.Quantity), 1, align.Center),
		cell(strconv.Itoa(rr.Minimum), 1, align.Center),
		cell(strconv.Itoa(rr.Shortfall), 2, align.Center),
	)
	if striped {
		r.WithStyle(&props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 240, Blue: 239}})
	}
	return r
}
