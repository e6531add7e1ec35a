package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gyt-equipos/panol-api/internal/domain/entity"
	"github.com/gyt-equipos/panol-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// MinimumFor — cascada de especificidad: item > grupo+equipo > equipo > 0.
// ──────────────────────────────────────────────────────────────────────────────

func itemFiltros(id string, qty int) entity.Item {
	return entity.Item{
		ID:            id,
		Code:          "F-12",
		Description:   "Filtro de aire motor",
		ComponentType: "Filtros",
		EquipmentType: "Pala Cargadora",
		Quantity:      qty,
	}
}

func TestMinimumFor_SinConfiguracion_RetornaCero(t *testing.T) {
	item := itemFiltros("i1", 3)
	assert.Equal(t, 0, stock.MinimumFor(item, nil),
		"sin ninguna regla el mínimo efectivo debe ser 0")
	assert.Equal(t, 0, stock.MinimumFor(item, []entity.MinStockConfig{}),
		"slice vacío equivale a sin reglas")
}

func TestMinimumFor_ReglaPorEquipo(t *testing.T) {
	item := itemFiltros("i1", 3)
	configs := []entity.MinStockConfig{
		{ID: "c1", Kind: entity.ScopeEquipment, EquipmentType: "Pala Cargadora", MinQuantity: 4},
		{ID: "c2", Kind: entity.ScopeEquipment, EquipmentType: "Motoniveladora", MinQuantity: 9},
	}
	assert.Equal(t, 4, stock.MinimumFor(item, configs),
		"debe aplicar la regla del tipo de equipo del item, no la de otro equipo")
}

func TestMinimumFor_GrupoGanaSobreEquipo(t *testing.T) {
	// "Filtros" pertenece al grupo "Insumos"
	item := itemFiltros("i1", 3)
	configs := []entity.MinStockConfig{
		{ID: "c1", Kind: entity.ScopeEquipment, EquipmentType: "Pala Cargadora", MinQuantity: 10},
		{ID: "c2", Kind: entity.ScopeGroup, EquipmentType: "Pala Cargadora", ComponentGroup: entity.GroupInsumos, MinQuantity: 5},
	}
	assert.Equal(t, 5, stock.MinimumFor(item, configs),
		"la regla por grupo dentro del equipo debe ganar a la regla por equipo")
}

func TestMinimumFor_ItemGanaSobreGrupoYEquipo(t *testing.T) {
	item := itemFiltros("i1", 3)
	configs := []entity.MinStockConfig{
		{ID: "c1", Kind: entity.ScopeEquipment, EquipmentType: "Pala Cargadora", MinQuantity: 10},
		{ID: "c2", Kind: entity.ScopeGroup, EquipmentType: "Pala Cargadora", ComponentGroup: entity.GroupInsumos, MinQuantity: 5},
		{ID: "c3", Kind: entity.ScopeItem, ItemID: "i1", MinQuantity: 2},
	}
	assert.Equal(t, 2, stock.MinimumFor(item, configs),
		"la regla por item puntual debe ganar a cualquier otro alcance")
}

func TestMinimumFor_GrupoDeOtroEquipoNoAplica(t *testing.T) {
	item := itemFiltros("i1", 3)
	configs := []entity.MinStockConfig{
		{ID: "c1", Kind: entity.ScopeGroup, EquipmentType: "Motoniveladora", ComponentGroup: entity.GroupInsumos, MinQuantity: 7},
	}
	assert.Equal(t, 0, stock.MinimumFor(item, configs),
		"una regla de grupo de otro tipo de equipo no debe aplicar")
}

func TestMinimumFor_GrupoDistintoNoAplica(t *testing.T) {
	// El item es de "Filtros" (Insumos); la regla es para Cubiertas.
	item := itemFiltros("i1", 3)
	configs := []entity.MinStockConfig{
		{ID: "c1", Kind: entity.ScopeGroup, EquipmentType: "Pala Cargadora", ComponentGroup: entity.GroupCubiertas, MinQuantity: 7},
	}
	assert.Equal(t, 0, stock.MinimumFor(item, configs))
}

func TestMinimumFor_ReglaDeOtroItemNoAplica(t *testing.T) {
	item := itemFiltros("i1", 3)
	configs := []entity.MinStockConfig{
		{ID: "c1", Kind: entity.ScopeItem, ItemID: "i2", MinQuantity: 99},
	}
	assert.Equal(t, 0, stock.MinimumFor(item, configs),
		"una regla por item de otro item no debe aplicar")
}

// Duplicados en un mismo alcance: gana la primera del slice. El mutador
// reemplaza por clave de alcance, pero el resolver tolera datos sucios.
func TestMinimumFor_DuplicadosGanaLaPrimera(t *testing.T) {
	item := itemFiltros("i1", 3)
	configs := []entity.MinStockConfig{
		{ID: "c1", Kind: entity.ScopeEquipment, EquipmentType: "Pala Cargadora", MinQuantity: 6},
		{ID: "c2", Kind: entity.ScopeEquipment, EquipmentType: "Pala Cargadora", MinQuantity: 11},
	}
	assert.Equal(t, 6, stock.MinimumFor(item, configs),
		"con reglas duplicadas en el mismo alcance gana la primera del snapshot")
}

// Escenario 1 de referencia: item de Filtros con regla de grupo Insumos.
func TestMinimumFor_EscenarioGrupoInsumos(t *testing.T) {
	item := itemFiltros("i1", 3)
	configs := []entity.MinStockConfig{
		{ID: "c1", Kind: entity.ScopeGroup, EquipmentType: "Pala Cargadora", ComponentGroup: entity.GroupInsumos, MinQuantity: 5},
	}
	assert.Equal(t, 5, stock.MinimumFor(item, configs))

	// Escenario 2: al agregar la regla por item, pasa a mandar el item.
	configs = append(configs, entity.MinStockConfig{
		ID: "c2", Kind: entity.ScopeItem, ItemID: "i1", MinQuantity: 2,
	})
	assert.Equal(t, 2, stock.MinimumFor(item, configs))
}

// Un componente fuera de la tabla de grupos cae en "Otros": la regla de grupo
// "Otros" del equipo le aplica.
func TestMinimumFor_ComponenteNoMapeadoUsaGrupoOtros(t *testing.T) {
	item := entity.Item{
		ID:            "i1",
		ComponentType: "Mangueras hidráulicas", // no está en el catálogo
		EquipmentType: "Retroexcavadora",
		Quantity:      1,
	}
	configs := []entity.MinStockConfig{
		{ID: "c1", Kind: entity.ScopeGroup, EquipmentType: "Retroexcavadora", ComponentGroup: entity.GroupOtros, MinQuantity: 3},
	}
	assert.Equal(t, 3, stock.MinimumFor(item, configs),
		"un componente no mapeado debe resolver por el grupo Otros")
}
