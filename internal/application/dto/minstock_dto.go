package dto

import "time"

// Valores aceptados en SetThresholdRequest.Scope.
const (
	ScopeItemValue      = "item"
	ScopeGroupValue     = "group"
	ScopeEquipmentValue = "equipment"
)

// SetThresholdRequest fija el umbral de una clave de alcance. Según Scope se
// exigen: item → ItemID; group → EquipmentType y ComponentGroup;
// equipment → EquipmentType. Si la clave ya tiene regla, se reemplaza el
// umbral en esa regla, nunca se agrega un duplicado.
type SetThresholdRequest struct {
	Scope          string `json:"scope"`
	ItemID         string `json:"item_id,omitempty"`
	EquipmentType  string `json:"equipment_type,omitempty"`
	ComponentGroup string `json:"component_group,omitempty"`
	MinQuantity    int    `json:"min_quantity"`
}

// MinStockResponse una regla de umbral.
type MinStockResponse struct {
	ID             string    `json:"id"`
	Scope          string    `json:"scope"`
	ItemID         string    `json:"item_id,omitempty"`
	EquipmentType  string    `json:"equipment_type,omitempty"`
	ComponentGroup string    `json:"component_group,omitempty"`
	MinQuantity    int       `json:"min_quantity"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MinStockListResponse listado de reglas.
type MinStockListResponse struct {
	Configs []MinStockResponse `json:"configs"`
	Total   int                `json:"total"`
}
