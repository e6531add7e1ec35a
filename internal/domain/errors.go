package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnknownEquipment = errors.New("tipo de equipo desconocido")
	ErrUnknownComponent = errors.New("tipo de componente desconocido")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrInvalidScope     = errors.New("alcance de configuración inválido")
)
