package entity

import "time"

// Estados de un backorder.
const (
	BackorderStatusPending   = "Pending"
	BackorderStatusFulfilled = "Fulfilled"
	BackorderStatusCancelled = "Cancelled"
)

// Backorder registra demanda insatisfecha de un producto en una bodega.
// Se crea cuando una reserva no puede cubrirse por completo; inmutable después
// de creado (no existe flujo de cumplimiento automático al llegar stock nuevo).
type Backorder struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	Status      string
	CreatedAt   time.Time
}
