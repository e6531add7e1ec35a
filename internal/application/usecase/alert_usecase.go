package usecase

import (
	"context"

	"github.com/gyt-equipos/panol-api/internal/application/dto"
	"github.com/gyt-equipos/panol-api/internal/domain/entity"
	"github.com/gyt-equipos/panol-api/internal/domain/repository"
	"github.com/gyt-equipos/panol-api/internal/domain/stock"
)

// AlertUseCase clasifica el inventario por severidad. No guarda estado: toma
// un snapshot fresco de items y reglas en cada invocación y delega en el
// clasificador puro.
type AlertUseCase struct {
	itemRepo   repository.ItemRepository
	configRepo repository.MinStockRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(itemRepo repository.ItemRepository, configRepo repository.MinStockRepository) *AlertUseCase {
	return &AlertUseCase{itemRepo: itemRepo, configRepo: configRepo}
}

// Summary devuelve la partición crítico / en límite / normal con el umbral y
// el faltante por item.
func (uc *AlertUseCase) Summary(ctx context.Context) (*dto.AlertsResponse, error) {
	items, err := uc.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	configs, err := uc.configRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	s := stock.Classify(items, configs)
	return &dto.AlertsResponse{
		Critical:    toAlertItems(s.Critical, configs, true),
		AtLimit:     toAlertItems(s.AtLimit, configs, false),
		Normal:      toAlertItems(s.Normal, configs, false),
		TotalAlerts: s.TotalAlerts(),
	}, nil
}

func toAlertItems(items []entity.Item, configs []entity.MinStockConfig, withShortfall bool) []dto.AlertItem {
	out := make([]dto.AlertItem, 0, len(items))
	for _, item := range items {
		min := stock.MinimumFor(item, configs)
		shortfall := 0
		if withShortfall && min > item.Quantity {
			shortfall = min - item.Quantity
		}
		out = append(out, dto.AlertItem{
			ID:             item.ID,
			Code:           item.Code,
			Location:       item.Location,
			Description:    item.Description,
			ComponentGroup: entity.GroupOf(item.ComponentType),
			EquipmentType:  item.EquipmentType,
			Quantity:       item.Quantity,
			MinQuantity:    min,
			Shortfall:      shortfall,
		})
	}
	return out
}
