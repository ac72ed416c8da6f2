package entity

import "time"

// Estados de una orden de compra a proveedor.
const (
	PurchaseOrderStatusPending   = "Pending"
	PurchaseOrderStatusReceived  = "Received"
	PurchaseOrderStatusCancelled = "Cancelled"
)

// ValidPurchaseOrderStatus indica si el estado es válido para una orden de compra.
func ValidPurchaseOrderStatus(s string) bool {
	switch s {
	case PurchaseOrderStatusPending, PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// PurchaseOrder representa una orden de compra a un proveedor. Si se crea con
// estado Received, sus ítems ingresan al stock de la bodega indicada.
type PurchaseOrder struct {
	ID         string
	SupplierID string
	Status     string
	OrderDate  time.Time
	CreatedAt  time.Time
}

// PurchaseOrderItem es una línea de la orden de compra.
type PurchaseOrderItem struct {
	ID              string
	PurchaseOrderID string
	ProductID       string
	WarehouseID     string
	Quantity        int64
}
