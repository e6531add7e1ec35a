package usecase_test

import (
	"context"
	"sync"

	"github.com/gyt-equipos/panol-api/internal/domain/entity"
	"github.com/gyt-equipos/panol-api/internal/domain/repository"
)

// Repositorios en memoria para los tests de casos de uso. Conservan el orden
// de inserción, igual que los adaptadores de PostgreSQL (ORDER BY created_at).

type memItemRepo struct {
	mu    sync.Mutex
	items []entity.Item
}

func (r *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *item)
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			copia := it
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) List(_ context.Context) ([]entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memItemRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

func (r *memItemRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type memMinStockRepo struct {
	mu      sync.Mutex
	configs []entity.MinStockConfig
}

func (r *memMinStockRepo) Create(_ context.Context, cfg *entity.MinStockConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs = append(r.configs, *cfg)
	return nil
}

func (r *memMinStockRepo) Update(_ context.Context, cfg *entity.MinStockConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.configs {
		if r.configs[i].ID == cfg.ID {
			r.configs[i] = *cfg
			return nil
		}
	}
	return nil
}

func (r *memMinStockRepo) GetByScopeKey(_ context.Context, key string) (*entity.MinStockConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.configs {
		if c.ScopeKey() == key {
			copia := c
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memMinStockRepo) List(_ context.Context) ([]entity.MinStockConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.MinStockConfig, len(r.configs))
	copy(out, r.configs)
	return out, nil
}

func (r *memMinStockRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.configs {
		if r.configs[i].ID == id {
			r.configs = append(r.configs[:i], r.configs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memMinStockRepo) DeleteByItemID(_ context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.configs[:0]
	for _, c := range r.configs {
		if c.Kind == entity.ScopeItem && c.ItemID == itemID {
			continue
		}
		kept = append(kept, c)
	}
	r.configs = kept
	return nil
}

func (r *memMinStockRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.configs), nil
}

// memTxRunner ejecuta el callback contra los mismos repos en memoria (sin
// transacción real; la atomicidad la cubren los tests del adaptador).
type memTxRunner struct {
	itemRepo   *memItemRepo
	configRepo *memMinStockRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	configRepo repository.MinStockRepository,
) error) error {
	return fn(r.itemRepo, r.configRepo)
}
