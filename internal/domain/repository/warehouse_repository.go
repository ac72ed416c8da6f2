package repository

import "github.com/jhoicas/Bodegas-api/internal/domain/entity"

// WarehouseRepository expone bodegas en modo solo lectura (id, nombre,
// capacidad). El CRUD de bodegas pertenece a otro colaborador.
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
}
