package entity

import "time"

// Estados de un movimiento de stock.
const (
	MovementStatusPending   = "Pending"
	MovementStatusInTransit = "In Transit"
	MovementStatusReceived  = "Received"
)

// ValidMovementStatus indica si el estado pertenece al ciclo de vida de movimientos.
func ValidMovementStatus(s string) bool {
	switch s {
	case MovementStatusPending, MovementStatusInTransit, MovementStatusReceived:
		return true
	}
	return false
}

// StockMovement es una entrada del libro mayor de stock: registra un cambio de
// cantidad con su causa (recepción o pata de un traslado). Append-only: nunca
// se muta ni se elimina.
//
// Convención de signo: Quantity negativo con solo SourceWarehouseID puesto
// representa una salida; positivo con solo DestinationWarehouseID puesto, una
// llegada. En recepciones directas ambas bodegas apuntan a la misma.
type StockMovement struct {
	ID                     string
	ProductID              string
	SourceWarehouseID      *string
	DestinationWarehouseID *string
	Quantity               int64
	Status                 string
	CreatedAt              time.Time
}
