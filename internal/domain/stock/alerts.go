// Package stock contiene los servicios de dominio puros del libro de stock:
// evaluación de umbrales de alerta sin acceso a persistencia.
package stock

import "github.com/jhoicas/Bodegas-api/internal/domain/entity"

// Status es el resultado de evaluar una fila de stock contra su producto y su
// bodega.
type Status struct {
	IsLow  bool
	IsFull bool
}

// Evaluate calcula el estado de alerta de una fila de stock (función pura).
//
// IsFull: la bodega tiene capacidad definida y Quantity >= Capacity.
// IsLow: el producto tiene umbral definido Y además
//   - Quantity < LowStockThreshold (umbral absoluto), o
//   - Quantity < 10% de la capacidad de la bodega (umbral relativo).
//
// Los dos umbrales disparan la misma bandera de forma independiente. Un umbral
// absoluto en cero nunca dispara la rama absoluta (la cantidad no puede ser
// < 0) pero la rama relativa sigue activa. Producto o bodega en nil no aportan
// banderas: quien llama es responsable del join.
func Evaluate(s *entity.Stock, product *entity.Product, warehouse *entity.Warehouse) Status {
	if s == nil {
		return Status{}
	}
	var st Status

	capacity := int64(0)
	if warehouse != nil {
		capacity = warehouse.Capacity
	}
	if capacity > 0 && s.Quantity >= capacity {
		st.IsFull = true
	}

	if product == nil || product.LowStockThreshold == nil {
		return st
	}
	if s.Quantity < *product.LowStockThreshold {
		st.IsLow = true
	}
	// 10% de capacidad comparado en enteros: qty*10 < capacity <=> qty < capacity*0.10
	if capacity > 0 && s.Quantity*10 < capacity {
		st.IsLow = true
	}
	return st
}
