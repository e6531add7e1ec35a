package report

import (
	"context"
	"fmt"
	"time"

	"github.com/gyt-equipos/panol-api/internal/domain/entity"
	"github.com/gyt-equipos/panol-api/internal/domain/repository"
	"github.com/gyt-equipos/panol-api/internal/domain/stock"
)

// Options configuración del reporte de reposición.
type Options struct {
	FilePrefix  string // prefijo del nombre de archivo, ej. "Stock_Critico_Roggio"
	CompanyName string
	DeptName    string
}

// UseCase genera el reporte de reposición de stock crítico: clasifica el
// inventario, proyecta el modelo tabular y lo renderiza a PDF.
type UseCase struct {
	itemRepo   repository.ItemRepository
	configRepo repository.MinStockRepository
	generator  PDFGenerator
	opts       Options
}

// NewUseCase construye el caso de uso.
func NewUseCase(itemRepo repository.ItemRepository, configRepo repository.MinStockRepository, generator PDFGenerator, opts Options) *UseCase {
	return &UseCase{itemRepo: itemRepo, configRepo: configRepo, generator: generator, opts: opts}
}

// CriticalStockPDF arma y renderiza el reporte. Devuelve el nombre de archivo
// con la convención <prefijo>_<DD-MM-AAAA>.pdf y los bytes del documento.
// Un inventario sin alertas produce un PDF válido con tablas vacías.
func (uc *UseCase) CriticalStockPDF(ctx context.Context) (string, []byte, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return "", nil, err
	}
	configs, err := uc.configRepo.List(ctx)
	if err != nil {
		return "", nil, err
	}

	summary := stock.Classify(items, configs)
	minFor := func(item entity.Item) int { return stock.MinimumFor(item, configs) }

	now := time.Now()
	model := stock.BuildReport(summary.Critical, summary.AtLimit, minFor, now)

	pdfBytes, err := uc.generator.GenerateReportPDF(ctx, model, Header{
		CompanyName: uc.opts.CompanyName,
		DeptName:    uc.opts.DeptName,
	})
	if err != nil {
		return "", nil, fmt.Errorf("generar reporte: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.pdf", uc.opts.FilePrefix, now.Format("02-01-2006"))
	return filename, pdfBytes, nil
}
