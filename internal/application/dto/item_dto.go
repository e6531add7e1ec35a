package dto

import "time"

// CreateItemRequest alta de un repuesto. Todos los campos son obligatorios;
// ComponentType y EquipmentType deben pertenecer al catálogo.
type CreateItemRequest struct {
	Code          string `json:"code"`
	Location      string `json:"location"`
	Description   string `json:"description"`
	ComponentType string `json:"component_type"`
	EquipmentType string `json:"equipment_type"`
	Quantity      int    `json:"quantity"`
}

// AdjustItemRequest ajuste de stock. Delta positivo ingresa, negativo egresa.
// El resultado se recorta en cero.
type AdjustItemRequest struct {
	Delta int `json:"delta"`
}

// ItemResponse un repuesto con su umbral mínimo resuelto.
type ItemResponse struct {
	ID             string    `json:"id"`
	Code           string    `json:"code"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	ComponentType  string    `json:"component_type"`
	ComponentGroup string    `json:"component_group"`
	EquipmentType  string    `json:"equipment_type"`
	Quantity       int       `json:"quantity"`
	MinQuantity    int       `json:"min_quantity"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ItemListResponse listado de repuestos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
