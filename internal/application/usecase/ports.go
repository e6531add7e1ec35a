package usecase

import (
	"context"

	"github.com/gyt-equipos/panol-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Lo usa la baja de items para que el borrado
// del item y el cascade de sus reglas por item sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		configRepo repository.MinStockRepository,
	) error) error
}
