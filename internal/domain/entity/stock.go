package entity

import "time"

// Stock representa la cantidad actual de un producto en una bodega.
// Una fila por par (producto, bodega); nunca se elimina, solo se deja en cero.
// Se muta únicamente a través del motor de reservas o del motor de traslados.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
