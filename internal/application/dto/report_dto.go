package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevelDTO fila de stock con su join de producto/bodega y las banderas de
// alerta derivadas. Los nombres quedan vacíos si el join no resuelve.
type StockLevelDTO struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name,omitempty"`
	WarehouseID   string `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name,omitempty"`
	Quantity      int64  `json:"quantity"`
	IsLow         bool   `json:"is_low"`
	IsFull        bool   `json:"is_full"`
}

// MovementDTO asiento del libro de movimientos con nombres resueltos.
type MovementDTO struct {
	ID                       string    `json:"id"`
	ProductID                string    `json:"product_id"`
	ProductName              string    `json:"product_name,omitempty"`
	SourceWarehouseID        *string   `json:"source_warehouse_id"`
	SourceWarehouseName      *string   `json:"source_warehouse_name,omitempty"`
	DestinationWarehouseID   *string   `json:"destination_warehouse_id"`
	DestinationWarehouseName *string   `json:"destination_warehouse_name,omitempty"`
	Quantity                 int64     `json:"quantity"`
	Status                   string    `json:"status"`
	CreatedAt                time.Time `json:"created_at"`
}

// InventoryValueDTO valorización de inventario agrupada por producto.
type InventoryValueDTO struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}
