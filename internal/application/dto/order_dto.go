package dto

import "time"

// PlaceOrderItemRequest línea del body de una orden.
type PlaceOrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// PlaceOrderRequest body para POST /api/orders.
type PlaceOrderRequest struct {
	CustomerID  string                  `json:"customer_id"`
	WarehouseID string                  `json:"warehouse_id"`
	Items       []PlaceOrderItemRequest `json:"items"`
}

// OrderItemResponse línea de la orden con lo reservado y lo backordeado.
type OrderItemResponse struct {
	ProductID           string `json:"product_id"`
	QuantityOrdered     int64  `json:"quantity_ordered"`
	QuantityReserved    int64  `json:"quantity_reserved"`
	QuantityBackordered int64  `json:"quantity_backordered"`
}

// PlaceOrderResponse respuesta de colocación de orden.
type PlaceOrderResponse struct {
	OrderID   string              `json:"order_id"`
	Status    string              `json:"status"`
	OrderDate time.Time           `json:"order_date"`
	Items     []OrderItemResponse `json:"items"`
}
