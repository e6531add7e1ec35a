package repository

import (
	"context"

	"github.com/gyt-equipos/panol-api/internal/domain/entity"
)

// MinStockRepository puerto de persistencia de reglas de stock mínimo.
// GetByScopeKey permite el reemplazo por clave de alcance (nunca duplicar una
// regla del mismo alcance). DeleteByItemID es el cascade al borrar un item.
type MinStockRepository interface {
	Create(ctx context.Context, cfg *entity.MinStockConfig) error
	Update(ctx context.Context, cfg *entity.MinStockConfig) error
	GetByScopeKey(ctx context.Context, key string) (*entity.MinStockConfig, error)
	List(ctx context.Context) ([]entity.MinStockConfig, error)
	Delete(ctx context.Context, id string) error
	DeleteByItemID(ctx context.Context, itemID string) error
	Count(ctx context.Context) (int, error)
}
