package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyt-equipos/panol-api/internal/application/dto"
	"github.com/gyt-equipos/panol-api/internal/application/usecase"
	"github.com/gyt-equipos/panol-api/internal/domain"
	"github.com/gyt-equipos/panol-api/internal/domain/entity"
)

func newMinStockFixture() (*usecase.MinStockUseCase, *memItemRepo, *memMinStockRepo) {
	itemRepo := &memItemRepo{}
	configRepo := &memMinStockRepo{}
	return usecase.NewMinStockUseCase(configRepo, itemRepo), itemRepo, configRepo
}

func TestSetThreshold_ReemplazaEnVezDeDuplicar(t *testing.T) {
	uc, _, configRepo := newMinStockFixture()
	ctx := context.Background()

	primero, err := uc.SetThreshold(ctx, dto.SetThresholdRequest{
		Scope: dto.ScopeEquipmentValue, EquipmentType: "Compactador", MinQuantity: 3,
	})
	require.NoError(t, err)

	segundo, err := uc.SetThreshold(ctx, dto.SetThresholdRequest{
		Scope: dto.ScopeEquipmentValue, EquipmentType: "Compactador", MinQuantity: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, primero.ID, segundo.ID, "la segunda escritura actualiza la misma regla")
	assert.Equal(t, 8, segundo.MinQuantity)

	configs, err := configRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, configs, 1, "la colección nunca tiene dos reglas del mismo alcance")
}

func TestSetThreshold_AlcancesDistintosConviven(t *testing.T) {
	uc, itemRepo, configRepo := newMinStockFixture()
	ctx := context.Background()

	require.NoError(t, itemRepo.Create(ctx, &entity.Item{
		ID: "i1", Code: "C-1", Location: "A1", Description: "Correa",
		ComponentType: "Correas", EquipmentType: "Motoniveladora", Quantity: 2,
	}))

	_, err := uc.SetThreshold(ctx, dto.SetThresholdRequest{
		Scope: dto.ScopeItemValue, ItemID: "i1", MinQuantity: 2,
	})
	require.NoError(t, err)
	_, err = uc.SetThreshold(ctx, dto.SetThresholdRequest{
		Scope: dto.ScopeGroupValue, EquipmentType: "Motoniveladora",
		ComponentGroup: entity.GroupInsumos, MinQuantity: 4,
	})
	require.NoError(t, err)
	_, err = uc.SetThreshold(ctx, dto.SetThresholdRequest{
		Scope: dto.ScopeEquipmentValue, EquipmentType: "Motoniveladora", MinQuantity: 6,
	})
	require.NoError(t, err)

	configs, err := configRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, configs, 3, "item, grupo y equipo son claves de alcance distintas")
}

func TestSetThreshold_Validaciones(t *testing.T) {
	uc, _, _ := newMinStockFixture()
	ctx := context.Background()

	_, err := uc.SetThreshold(ctx, dto.SetThresholdRequest{
		Scope: dto.ScopeEquipmentValue, EquipmentType: "Compactador", MinQuantity: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "umbral negativo rechazado")

	_, err = uc.SetThreshold(ctx, dto.SetThresholdRequest{
		Scope: "warehouse", EquipmentType: "Compactador", MinQuantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidScope, "alcance desconocido rechazado")

	_, err = uc.SetThreshold(ctx, dto.SetThresholdRequest{
		Scope: dto.ScopeItemValue, MinQuantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidScope, "alcance item sin item_id rechazado")

	_, err = uc.SetThreshold(ctx, dto.SetThresholdRequest{
		Scope: dto.ScopeItemValue, ItemID: "no-existe", MinQuantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "el item del alcance debe existir")

	_, err = uc.SetThreshold(ctx, dto.SetThresholdRequest{
		Scope: dto.ScopeGroupValue, EquipmentType: "Motoniveladora",
		ComponentGroup: "Repuestos Varios", MinQuantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidScope, "el grupo debe pertenecer al catálogo")

	_, err = uc.SetThreshold(ctx, dto.SetThresholdRequest{
		Scope: dto.ScopeEquipmentValue, EquipmentType: "Zeppelin", MinQuantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownEquipment)
}

func TestSetThreshold_UmbralCeroEsValido(t *testing.T) {
	uc, _, _ := newMinStockFixture()

	out, err := uc.SetThreshold(context.Background(), dto.SetThresholdRequest{
		Scope: dto.ScopeEquipmentValue, EquipmentType: "Camioneta", MinQuantity: 0,
	})
	require.NoError(t, err, "umbral 0 es una regla válida (silencia la alerta)")
	assert.Equal(t, 0, out.MinQuantity)
}

func TestMinStockDelete_Idempotente(t *testing.T) {
	uc, _, _ := newMinStockFixture()
	assert.NoError(t, uc.Delete(context.Background(), "no-existe"))
}

func TestEnsureDefaults_SiembraUnaReglaPorEquipo(t *testing.T) {
	uc, _, configRepo := newMinStockFixture()
	ctx := context.Background()

	created, err := uc.EnsureDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(entity.EquipmentTypes), created,
		"primer arranque: una regla por tipo de equipo")

	configs, err := configRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, configs, len(entity.EquipmentTypes))
	for _, c := range configs {
		assert.Equal(t, entity.ScopeEquipment, c.Kind)
		assert.Equal(t, 5, c.MinQuantity)
	}
}

func TestEnsureDefaults_NoTocaReglasExistentes(t *testing.T) {
	uc, _, configRepo := newMinStockFixture()
	ctx := context.Background()

	require.NoError(t, configRepo.Create(ctx, &entity.MinStockConfig{
		ID: "r1", Kind: entity.ScopeEquipment, EquipmentType: "Camioneta", MinQuantity: 9,
	}))

	created, err := uc.EnsureDefaults(ctx)
	require.NoError(t, err)
	assert.Zero(t, created, "con reglas cargadas la siembra no hace nada")

	configs, err := configRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, configs, 1)
}
