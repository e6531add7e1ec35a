package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyt-equipos/panol-api/internal/application/usecase"
	"github.com/gyt-equipos/panol-api/internal/domain/entity"
)

func TestAlertSummary_ParticionYFaltante(t *testing.T) {
	itemRepo := &memItemRepo{}
	configRepo := &memMinStockRepo{}
	uc := usecase.NewAlertUseCase(itemRepo, configRepo)
	ctx := context.Background()

	// Mínimo 5 para toda la Pala Cargadora
	require.NoError(t, configRepo.Create(ctx, &entity.MinStockConfig{
		ID: "r1", Kind: entity.ScopeEquipment, EquipmentType: "Pala Cargadora", MinQuantity: 5,
	}))

	require.NoError(t, itemRepo.Create(ctx, &entity.Item{
		ID: "critico", Code: "D-1", Description: "Diente",
		ComponentType: "Dientes", EquipmentType: "Pala Cargadora", Quantity: 2,
	}))
	require.NoError(t, itemRepo.Create(ctx, &entity.Item{
		ID: "limite", Code: "F-1", Description: "Filtro",
		ComponentType: "Filtros", EquipmentType: "Pala Cargadora", Quantity: 5,
	}))
	require.NoError(t, itemRepo.Create(ctx, &entity.Item{
		ID: "normal", Code: "A-1", Description: "Aceite",
		ComponentType: "Aceites", EquipmentType: "Pala Cargadora", Quantity: 9,
	}))

	out, err := uc.Summary(ctx)
	require.NoError(t, err)

	require.Len(t, out.Critical, 1)
	require.Len(t, out.AtLimit, 1)
	require.Len(t, out.Normal, 1)
	assert.Equal(t, 2, out.TotalAlerts, "críticos + en límite")

	assert.Equal(t, "critico", out.Critical[0].ID)
	assert.Equal(t, 3, out.Critical[0].Shortfall, "faltante = mínimo - stock")
	assert.Equal(t, "limite", out.AtLimit[0].ID)
	assert.Zero(t, out.AtLimit[0].Shortfall, "en límite no falta nada todavía")
}

func TestAlertSummary_SinReglasNadieAlerta(t *testing.T) {
	itemRepo := &memItemRepo{}
	configRepo := &memMinStockRepo{}
	uc := usecase.NewAlertUseCase(itemRepo, configRepo)
	ctx := context.Background()

	require.NoError(t, itemRepo.Create(ctx, &entity.Item{
		ID: "i1", Code: "X-1", Description: "Repuesto sin regla",
		ComponentType: "Otros", EquipmentType: "Automóvil", Quantity: 0,
	}))

	out, err := uc.Summary(ctx)
	require.NoError(t, err)
	assert.Zero(t, out.TotalAlerts, "sin umbral configurado el stock cero no alerta")
	assert.Len(t, out.Normal, 1)
}
