package repository

import "github.com/jhoicas/Bodegas-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por
// producto+bodega. Get y GetForUpdate devuelven nil (sin error) si la fila no
// existe: el motor decide si eso significa "cero disponible" o "saltar la pata
// de débito".
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Solo tiene
	// sentido dentro de una transacción.
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	// AddQuantity incrementa (o crea con delta) la fila de forma atómica en el
	// store, sin leer antes. Evita lost updates en créditos concurrentes sobre
	// filas que aún no existen.
	AddQuantity(productID, warehouseID string, delta int64) error
	List() ([]*entity.Stock, error)
}
