package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gyt-equipos/panol-api/internal/application/dto"
	"github.com/gyt-equipos/panol-api/internal/domain"
	"github.com/gyt-equipos/panol-api/internal/domain/entity"
	"github.com/gyt-equipos/panol-api/internal/domain/repository"
	"github.com/gyt-equipos/panol-api/internal/domain/stock"
)

// ItemUseCase alta, listado, ajuste de stock y baja de repuestos.
// La baja es transaccional: borra el item y sus reglas por item en la misma tx.
type ItemUseCase struct {
	itemRepo   repository.ItemRepository
	configRepo repository.MinStockRepository
	txRunner   TxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository, configRepo repository.MinStockRepository, txRunner TxRunner) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, configRepo: configRepo, txRunner: txRunner}
}

// Create da de alta un repuesto. Todos los campos son obligatorios y los tipos
// deben pertenecer al catálogo. Code puede repetirse entre items: la clave es
// el ID.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Code == "" || in.Location == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsEquipmentType(in.EquipmentType) {
		return nil, domain.ErrUnknownEquipment
	}
	if !entity.IsComponentType(in.ComponentType) {
		return nil, domain.ErrUnknownComponent
	}

	now := time.Now()
	item := &entity.Item{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Location:      in.Location,
		Description:   in.Description,
		ComponentType: in.ComponentType,
		EquipmentType: in.EquipmentType,
		Quantity:      in.Quantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	configs, err := uc.configRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponse(*item, configs), nil
}

// List devuelve el inventario con el umbral resuelto por item. q filtra por
// código, descripción o tipo de equipo sin distinguir mayúsculas ni tildes.
func (uc *ItemUseCase) List(ctx context.Context, q string) (*dto.ItemListResponse, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	configs, err := uc.configRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	folded := foldSearch(q)
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		if !matchesSearch(folded, item.Code, item.Description, item.EquipmentType) {
			continue
		}
		out = append(out, *toItemResponse(item, configs))
	}
	return &dto.ItemListResponse{Items: out, Total: len(out)}, nil
}

// Adjust aplica un delta al stock del item, recortando en cero. Restar más de
// lo disponible no es un error: el stock queda en 0 (el guard de la UI que
// deshabilita el egreso es cosmético; este recorte es el comportamiento
// autoritativo).
func (uc *ItemUseCase) Adjust(ctx context.Context, id string, delta int) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	adjusted := item.Adjust(delta)
	if err := uc.itemRepo.UpdateQuantity(ctx, id, adjusted.Quantity); err != nil {
		return nil, err
	}
	adjusted.UpdatedAt = time.Now()

	configs, err := uc.configRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponse(adjusted, configs), nil
}

// Delete borra el item y, en la misma transacción, toda regla por item que lo
// referencie. Borrar un id inexistente es un no-op, no un error.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		configRepo repository.MinStockRepository,
	) error {
		if err := itemRepo.Delete(ctx, id); err != nil {
			return err
		}
		return configRepo.DeleteByItemID(ctx, id)
	})
}

func toItemResponse(item entity.Item, configs []entity.MinStockConfig) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:             item.ID,
		Code:           item.Code,
		Location:       item.Location,
		Description:    item.Description,
		ComponentType:  item.ComponentType,
		ComponentGroup: entity.GroupOf(item.ComponentType),
		EquipmentType:  item.EquipmentType,
		Quantity:       item.Quantity,
		MinQuantity:    stock.MinimumFor(item, configs),
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}
