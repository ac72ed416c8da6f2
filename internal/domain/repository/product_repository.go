package repository

import "github.com/jhoicas/Bodegas-api/internal/domain/entity"

// ProductRepository expone productos en modo solo lectura: el ciclo de vida
// CRUD de productos pertenece a otro colaborador, este núcleo solo consulta
// id, umbral de stock bajo y costo.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
}
