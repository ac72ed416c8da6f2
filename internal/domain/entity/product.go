package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU. Este núcleo solo lo lee: el CRUD de
// productos vive en otro colaborador. LowStockThreshold en nil desactiva la
// alerta por umbral absoluto.
type Product struct {
	ID                string
	SKU               string
	Name              string
	Description       string
	CostPrice         decimal.Decimal
	LowStockThreshold *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
