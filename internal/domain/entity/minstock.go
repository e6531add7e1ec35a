package entity

import "time"

// ScopeKind alcance de una regla de stock mínimo. El alcance es un tipo
// variante explícito: cada regla es de exactamente una de estas tres clases,
// en vez de inferirse por qué campos opcionales están cargados.
type ScopeKind string

const (
	// ScopeItem regla para un item puntual (ItemID).
	ScopeItem ScopeKind = "ITEM"
	// ScopeGroup regla para un grupo de componentes dentro de un tipo de
	// equipo (EquipmentType + ComponentGroup).
	ScopeGroup ScopeKind = "GROUP"
	// ScopeEquipment regla para todo un tipo de equipo (EquipmentType).
	ScopeEquipment ScopeKind = "EQUIPMENT"
)

// MinStockConfig una regla de umbral de stock mínimo.
// Según Kind aplican: ItemID (ITEM); EquipmentType+ComponentGroup (GROUP);
// EquipmentType (EQUIPMENT). Los campos que no corresponden quedan vacíos.
type MinStockConfig struct {
	ID             string
	Kind           ScopeKind
	ItemID         string
	EquipmentType  string
	ComponentGroup string
	MinQuantity    int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ScopeKey clave canónica del alcance. Dos reglas con la misma clave compiten
// por el mismo umbral: el mutador reemplaza en vez de duplicar.
func (c MinStockConfig) ScopeKey() string {
	switch c.Kind {
	case ScopeItem:
		return "item:" + c.ItemID
	case ScopeGroup:
		return "group:" + c.EquipmentType + ":" + c.ComponentGroup
	case ScopeEquipment:
		return "equipment:" + c.EquipmentType
	}
	return ""
}

// Valid verifica la coherencia interna de la regla: alcance conocido, campos
// del alcance cargados, los ajenos vacíos y umbral no negativo.
func (c MinStockConfig) Valid() bool {
	if c.MinQuantity < 0 {
		return false
	}
	switch c.Kind {
	case ScopeItem:
		return c.ItemID != "" && c.EquipmentType == "" && c.ComponentGroup == ""
	case ScopeGroup:
		return c.ItemID == "" && c.EquipmentType != "" && c.ComponentGroup != ""
	case ScopeEquipment:
		return c.ItemID == "" && c.EquipmentType != "" && c.ComponentGroup == ""
	}
	return false
}
