package stock

import "github.com/gyt-equipos/panol-api/internal/domain/entity"

// Summary particiona el inventario por severidad. Todo item cae en
// exactamente uno de los tres grupos.
type Summary struct {
	Critical []entity.Item // Quantity < mínimo resuelto
	AtLimit  []entity.Item // Quantity == mínimo resuelto, con mínimo > 0
	Normal   []entity.Item // el resto
}

// TotalAlerts cantidad de items que requieren atención (críticos + en límite).
func (s Summary) TotalAlerts() int {
	return len(s.Critical) + len(s.AtLimit)
}

// Classify clasifica cada item según su umbral resuelto. Un item con umbral 0
// nunca queda "en límite": umbral 0 significa "sin alerta configurada", no
// "mantener stock cero". Se preserva el orden de items en cada grupo.
func Classify(items []entity.Item, configs []entity.MinStockConfig) Summary {
	var s Summary
	for _, item := range items {
		min := MinimumFor(item, configs)
		switch {
		case item.Quantity < min:
			s.Critical = append(s.Critical, item)
		case item.Quantity == min && min > 0:
			s.AtLimit = append(s.AtLimit, item)
		default:
			s.Normal = append(s.Normal, item)
		}
	}
	return s
}
