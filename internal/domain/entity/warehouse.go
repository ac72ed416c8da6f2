package entity

import "time"

// Warehouse representa una bodega. Solo lectura para este núcleo.
// Capacity en cero significa capacidad no definida (sin umbral relativo ni
// estado "llena").
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	Capacity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
