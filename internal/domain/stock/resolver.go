// Package stock contiene la lógica pura de stock mínimo del pañol:
// resolución del umbral efectivo por item, clasificación de alertas y
// proyección del reporte de reposición. Ninguna función hace I/O; todas
// operan sobre snapshots que el caller obtiene de persistencia.
package stock

import "github.com/gyt-equipos/panol-api/internal/domain/entity"

// MinimumFor resuelve el umbral de stock mínimo efectivo de un item aplicando
// la cascada de especificidad, primera coincidencia gana:
//
//  1. regla por item (ItemID)
//  2. regla por grupo dentro del tipo de equipo (EquipmentType + grupo del
//     componente según el catálogo)
//  3. regla por tipo de equipo
//  4. sin regla: 0 (con umbral 0 el item nunca alerta, porque Quantity >= 0)
//
// Si hubiera reglas duplicadas en un mismo alcance (no debería: el mutador
// reemplaza por clave de alcance) gana la primera en el orden del slice.
func MinimumFor(item entity.Item, configs []entity.MinStockConfig) int {
	for _, c := range configs {
		if c.Kind == entity.ScopeItem && c.ItemID == item.ID {
			return c.MinQuantity
		}
	}

	group := entity.GroupOf(item.ComponentType)
	for _, c := range configs {
		if c.Kind == entity.ScopeGroup && c.EquipmentType == item.EquipmentType && c.ComponentGroup == group {
			return c.MinQuantity
		}
	}

	for _, c := range configs {
		if c.Kind == entity.ScopeEquipment && c.EquipmentType == item.EquipmentType {
			return c.MinQuantity
		}
	}

	return 0
}
