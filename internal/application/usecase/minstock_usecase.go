package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gyt-equipos/panol-api/internal/application/dto"
	"github.com/gyt-equipos/panol-api/internal/domain"
	"github.com/gyt-equipos/panol-api/internal/domain/entity"
	"github.com/gyt-equipos/panol-api/internal/domain/repository"
)

// Umbral por defecto que se siembra por tipo de equipo cuando la tabla de
// reglas está vacía (primer arranque).
const defaultMinQuantity = 5

// MinStockUseCase gestión de reglas de stock mínimo: fijar umbral con
// reemplazo por clave de alcance, listar, borrar y sembrar los valores
// iniciales.
type MinStockUseCase struct {
	configRepo repository.MinStockRepository
	itemRepo   repository.ItemRepository
}

// NewMinStockUseCase construye el caso de uso.
func NewMinStockUseCase(configRepo repository.MinStockRepository, itemRepo repository.ItemRepository) *MinStockUseCase {
	return &MinStockUseCase{configRepo: configRepo, itemRepo: itemRepo}
}

// SetThreshold fija el umbral de una clave de alcance. Si la clave ya tiene
// una regla, actualiza el umbral en esa regla (misma fila, mismo ID); si no,
// la crea. Así la colección nunca tiene dos reglas del mismo alcance.
func (uc *MinStockUseCase) SetThreshold(ctx context.Context, in dto.SetThresholdRequest) (*dto.MinStockResponse, error) {
	cfg, err := uc.buildConfig(ctx, in)
	if err != nil {
		return nil, err
	}

	existing, err := uc.configRepo.GetByScopeKey(ctx, cfg.ScopeKey())
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if existing != nil {
		existing.MinQuantity = cfg.MinQuantity
		existing.UpdatedAt = now
		if err := uc.configRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return toMinStockResponse(*existing), nil
	}

	cfg.ID = uuid.New().String()
	cfg.CreatedAt = now
	cfg.UpdatedAt = now
	if err := uc.configRepo.Create(ctx, cfg); err != nil {
		return nil, err
	}
	return toMinStockResponse(*cfg), nil
}

// buildConfig arma la regla según su alcance. La pertenencia al catálogo se
// verifica acá; la coherencia interna del alcance (campos cargados/vacíos,
// umbral no negativo) la garantiza entity.MinStockConfig.Valid.
func (uc *MinStockUseCase) buildConfig(ctx context.Context, in dto.SetThresholdRequest) (*entity.MinStockConfig, error) {
	if in.MinQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	cfg := &entity.MinStockConfig{MinQuantity: in.MinQuantity}
	switch in.Scope {
	case dto.ScopeItemValue:
		cfg.Kind = entity.ScopeItem
		cfg.ItemID = in.ItemID
	case dto.ScopeGroupValue:
		if !entity.IsEquipmentType(in.EquipmentType) {
			return nil, domain.ErrUnknownEquipment
		}
		if !entity.IsComponentGroup(in.ComponentGroup) {
			return nil, domain.ErrInvalidScope
		}
		cfg.Kind = entity.ScopeGroup
		cfg.EquipmentType = in.EquipmentType
		cfg.ComponentGroup = in.ComponentGroup
	case dto.ScopeEquipmentValue:
		if !entity.IsEquipmentType(in.EquipmentType) {
			return nil, domain.ErrUnknownEquipment
		}
		cfg.Kind = entity.ScopeEquipment
		cfg.EquipmentType = in.EquipmentType
	default:
		return nil, domain.ErrInvalidScope
	}
	if !cfg.Valid() {
		return nil, domain.ErrInvalidScope
	}

	if cfg.Kind == entity.ScopeItem {
		item, err := uc.itemRepo.GetByID(ctx, cfg.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
	}
	return cfg, nil
}

// List devuelve todas las reglas.
func (uc *MinStockUseCase) List(ctx context.Context) (*dto.MinStockListResponse, error) {
	configs, err := uc.configRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MinStockResponse, 0, len(configs))
	for _, c := range configs {
		out = append(out, *toMinStockResponse(c))
	}
	return &dto.MinStockListResponse{Configs: out, Total: len(out)}, nil
}

// Delete borra una regla por ID. Borrar un id inexistente es un no-op.
func (uc *MinStockUseCase) Delete(ctx context.Context, id string) error {
	return uc.configRepo.Delete(ctx, id)
}

// EnsureDefaults siembra una regla por tipo de equipo con el umbral por
// defecto cuando todavía no hay ninguna regla cargada. Se invoca una vez al
// arranque; si ya hay reglas no toca nada.
func (uc *MinStockUseCase) EnsureDefaults(ctx context.Context) (int, error) {
	count, err := uc.configRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now()
	created := 0
	for _, equipmentType := range entity.EquipmentTypes {
		cfg := &entity.MinStockConfig{
			ID:            uuid.New().String(),
			Kind:          entity.ScopeEquipment,
			EquipmentType: equipmentType,
			MinQuantity:   defaultMinQuantity,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := uc.configRepo.Create(ctx, cfg); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func toMinStockResponse(c entity.MinStockConfig) *dto.MinStockResponse {
	scope := ""
	switch c.Kind {
	case entity.ScopeItem:
		scope = dto.ScopeItemValue
	case entity.ScopeGroup:
		scope = dto.ScopeGroupValue
	case entity.ScopeEquipment:
		scope = dto.ScopeEquipmentValue
	}
	return &dto.MinStockResponse{
		ID:             c.ID,
		Scope:          scope,
		ItemID:         c.ItemID,
		EquipmentType:  c.EquipmentType,
		ComponentGroup: c.ComponentGroup,
		MinQuantity:    c.MinQuantity,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
