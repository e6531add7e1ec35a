package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gyt-equipos/panol-api/internal/domain/entity"
	"github.com/gyt-equipos/panol-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
//
// Tabla items: code NO lleva constraint de unicidad (los códigos legibles
// pueden repetirse, la clave es id); quantity lleva CHECK (quantity >= 0).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo item.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, code, location, description, component_type, equipment_type, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Code, item.Location, item.Description,
		item.ComponentType, item.EquipmentType, item.Quantity,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID. Devuelve nil sin error si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	query := `
		SELECT id, code, location, description, component_type, equipment_type, quantity, created_at, updated_at
		FROM items WHERE id = $1`
	var i entity.Item
	err := r.q.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Code, &i.Location, &i.Description,
		&i.ComponentType, &i.EquipmentType, &i.Quantity,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// List devuelve el inventario completo en orden de alta. Sin filas devuelve
// slice vacío (el reporte y el clasificador toleran inventario vacío).
func (r *ItemRepo) List(ctx context.Context) ([]entity.Item, error) {
	query := `
		SELECT id, code, location, description, component_type, equipment_type, quantity, created_at, updated_at
		FROM items ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	list := make([]entity.Item, 0)
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.Code, &i.Location, &i.Description,
			&i.ComponentType, &i.EquipmentType, &i.Quantity,
			&i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// UpdateQuantity actualiza solo el stock del item (los ajustes ya llegan recortados en cero).
func (r *ItemRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	return nil
}

// Delete elimina un item por ID. Borrar un id inexistente no es un error.
func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
