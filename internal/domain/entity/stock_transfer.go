package entity

import "time"

// StockTransfer es el registro de solicitud/auditoría de un traslado entre
// bodegas. Es independiente de las filas de StockMovement: la duplicación es
// intencional (el traslado documenta la intención, el movimiento es el asiento
// contable).
type StockTransfer struct {
	ID                     string
	ProductID              string
	SourceWarehouseID      string
	DestinationWarehouseID string
	Quantity               int64
	Status                 string
	TransferDate           time.Time
}
