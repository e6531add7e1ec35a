package dto

// AlertItem un repuesto clasificado, con el umbral que gatilló la severidad.
type AlertItem struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	ComponentGroup string `json:"component_group"`
	EquipmentType  string `json:"equipment_type"`
	Quantity       int    `json:"quantity"`
	MinQuantity    int    `json:"min_quantity"`
	Shortfall      int    `json:"shortfall"`
}

// AlertsResponse partición del inventario por severidad. Los tres grupos
// cubren todo el inventario sin solapes.
type AlertsResponse struct {
	Critical    []AlertItem `json:"critical"`
	AtLimit     []AlertItem `json:"at_limit"`
	Normal      []AlertItem `json:"normal"`
	TotalAlerts int         `json:"total_alerts"`
}
