package dto

import "time"

// PurchaseOrderItemRequest línea del body de una orden de compra.
type PurchaseOrderItemRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
}

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
type CreatePurchaseOrderRequest struct {
	SupplierID string                     `json:"supplier_id"`
	OrderDate  time.Time                  `json:"order_date"`
	Status     string                     `json:"status"` // Pending | Received | Cancelled
	Items      []PurchaseOrderItemRequest `json:"items"`
}

// PurchaseOrderResponse orden de compra persistida.
type PurchaseOrderResponse struct {
	ID         string    `json:"id"`
	SupplierID string    `json:"supplier_id"`
	Status     string    `json:"status"`
	OrderDate  time.Time `json:"order_date"`
}
