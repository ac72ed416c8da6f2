package entity

import "time"

// Estados de una orden de cliente.
const (
	OrderStatusPlaced  = "Placed"
	OrderStatusShipped = "Shipped"
)

// CustomerOrder representa una orden de cliente contra una bodega.
type CustomerOrder struct {
	ID          string
	CustomerID  string
	WarehouseID string
	Status      string
	OrderDate   time.Time
	ShippedDate *time.Time
}

// OrderItem es una línea de la orden. El faltante se ve en
// QuantityBackordered, no como fallo de la orden.
type OrderItem struct {
	ID                  string
	OrderID             string
	ProductID           string
	QuantityOrdered     int64
	QuantityReserved    int64
	QuantityBackordered int64
}
