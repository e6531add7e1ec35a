package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gyt-equipos/panol-api/internal/domain"
	"github.com/gyt-equipos/panol-api/internal/domain/entity"
	"github.com/gyt-equipos/panol-api/internal/domain/repository"
)

var _ repository.MinStockRepository = (*MinStockRepo)(nil)

// MinStockRepo implementación del puerto MinStockRepository sobre PostgreSQL.
//
// Tabla min_stock_configs: scope_key lleva UNIQUE como última línea de defensa
// del reemplazo por clave de alcance (el caso de uso ya reemplaza antes de
// crear); los campos de alcance no aplicables se guardan como cadena vacía.
type MinStockRepo struct {
	q Querier
}

// NewMinStockRepository construye el adaptador de persistencia para reglas. Pasar pool o tx (Querier).
func NewMinStockRepository(q Querier) *MinStockRepo {
	return &MinStockRepo{q: q}
}

// Create persiste una nueva regla.
func (r *MinStockRepo) Create(ctx context.Context, cfg *entity.MinStockConfig) error {
	query := `
		INSERT INTO min_stock_configs (id, scope_kind, scope_key, item_id, equipment_type, component_group, min_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		cfg.ID, string(cfg.Kind), cfg.ScopeKey(),
		cfg.ItemID, cfg.EquipmentType, cfg.ComponentGroup,
		cfg.MinQuantity, cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidScope
		}
		return fmt.Errorf("insert min stock config: %w", err)
	}
	return nil
}

// Update actualiza el umbral de una regla existente (mismo ID, misma clave de alcance).
func (r *MinStockRepo) Update(ctx context.Context, cfg *entity.MinStockConfig) error {
	_, err := r.q.Exec(ctx,
		`UPDATE min_stock_configs SET min_quantity = $2, updated_at = $3 WHERE id = $1`,
		cfg.ID, cfg.MinQuantity, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update min stock config: %w", err)
	}
	return nil
}

// GetByScopeKey busca la regla de una clave de alcance. Devuelve nil sin error si no hay.
func (r *MinStockRepo) GetByScopeKey(ctx context.Context, key string) (*entity.MinStockConfig, error) {
	query := `
		SELECT id, scope_kind, item_id, equipment_type, component_group, min_quantity, created_at, updated_at
		FROM min_stock_configs WHERE scope_key = $1`
	cfg, err := scanConfig(r.q.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get min stock config: %w", err)
	}
	return cfg, nil
}

// List devuelve todas las reglas en orden de alta. Sin filas devuelve slice vacío.
func (r *MinStockRepo) List(ctx context.Context) ([]entity.MinStockConfig, error) {
	query := `
		SELECT id, scope_kind, item_id, equipment_type, component_group, min_quantity, created_at, updated_at
		FROM min_stock_configs ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list min stock configs: %w", err)
	}
	defer rows.Close()

	list := make([]entity.MinStockConfig, 0)
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("scan min stock config: %w", err)
		}
		list = append(list, *cfg)
	}
	return list, rows.Err()
}

// Delete elimina una regla por ID. Borrar un id inexistente no es un error.
func (r *MinStockRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM min_stock_configs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete min stock config: %w", err)
	}
	return nil
}

// DeleteByItemID elimina las reglas por item de un item (cascade al borrarlo).
func (r *MinStockRepo) DeleteByItemID(ctx context.Context, itemID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM min_stock_configs WHERE scope_kind = $1 AND item_id = $2`,
		string(entity.ScopeItem), itemID,
	)
	if err != nil {
		return fmt.Errorf("delete min stock configs by item: %w", err)
	}
	return nil
}

// Count cantidad de reglas cargadas (para la siembra inicial).
func (r *MinStockRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM min_stock_configs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count min stock configs: %w", err)
	}
	return n, nil
}

func scanConfig(row pgx.Row) (*entity.MinStockConfig, error) {
	var c entity.MinStockConfig
	var kind string
	if err := row.Scan(&c.ID, &kind, &c.ItemID, &c.EquipmentType, &c.ComponentGroup,
		&c.MinQuantity, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Kind = entity.ScopeKind(kind)
	return &c, nil
}
