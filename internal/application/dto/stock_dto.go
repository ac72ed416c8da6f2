package dto

import "time"

// AddStockRequest body para POST /api/stock.
type AddStockRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"` // negativo = ajuste hacia abajo
}

// StockResponse fila de stock resultante de una entrada.
type StockResponse struct {
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransferRequest body para POST /api/stock/transfer.
type TransferRequest struct {
	ProductID              string `json:"product_id"`
	SourceWarehouseID      string `json:"source_warehouse_id"`
	DestinationWarehouseID string `json:"destination_warehouse_id"`
	Quantity               int64  `json:"quantity"`
	Status                 string `json:"status"` // Pending | In Transit | Received
}

// BackorderDTO demanda insatisfecha registrada, con nombre de producto
// resuelto cuando el join aplica.
type BackorderDTO struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransferResponse registro de auditoría del traslado.
type TransferResponse struct {
	ID                     string    `json:"id"`
	ProductID              string    `json:"product_id"`
	SourceWarehouseID      string    `json:"source_warehouse_id"`
	DestinationWarehouseID string    `json:"destination_warehouse_id"`
	Quantity               int64     `json:"quantity"`
	Status                 string    `json:"status"`
	TransferDate           time.Time `json:"transfer_date"`
}
