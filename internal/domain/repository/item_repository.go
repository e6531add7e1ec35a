package repository

import (
	"context"

	"github.com/gyt-equipos/panol-api/internal/domain/entity"
)

// ItemRepository puerto de persistencia de items del pañol.
// List devuelve el inventario completo en orden de alta (la lógica de stock
// opera sobre snapshots completos; el volumen es chico). Si no hay datos o el
// almacenamiento está vacío/corrupto, devuelve slice vacío, no error.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context) ([]entity.Item, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
}
