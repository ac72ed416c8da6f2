package repository

import "github.com/jhoicas/Bodegas-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para el libro mayor
// de movimientos (DIP). Solo inserción y lectura: el libro es append-only.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// List devuelve movimientos ordenados del más reciente al más antiguo.
	List(limit, offset int) ([]*entity.StockMovement, error)
}
