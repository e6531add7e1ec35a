package entity

import "time"

// Item un repuesto en estantería del pañol.
// Code es un identificador legible (puede repetirse entre items; el ID es la
// única clave). Quantity nunca es negativa: los ajustes se recortan en cero.
type Item struct {
	ID            string
	Code          string
	Location      string
	Description   string
	ComponentType string // valor del catálogo ComponentTypes
	EquipmentType string // valor del catálogo EquipmentTypes
	Quantity      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Adjust aplica un delta (positivo o negativo) recortando en cero.
// Restar más de lo disponible deja el stock en 0, nunca es un error.
func (i Item) Adjust(delta int) Item {
	q := i.Quantity + delta
	if q < 0 {
		q = 0
	}
	i.Quantity = q
	return i
}
