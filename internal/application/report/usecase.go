// Package report contiene las proyecciones de solo lectura sobre el stock y
// el libro de movimientos. Nunca mutan estado; los joins con producto y bodega
// se arman por llamada (read-through, sin caché en proceso) y toleran
// referencias que ya no resuelven.
package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodegas-api/internal/application/dto"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
	domstock "github.com/jhoicas/Bodegas-api/internal/domain/stock"
)

// UseCase proyecciones de reporte.
type UseCase struct {
	stockRepo     repository.StockRepository
	movementRepo  repository.StockMovementRepository
	transferRepo  repository.StockTransferRepository
	backorderRepo repository.BackorderRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewUseCase construye el caso de uso con repositorios atados al pool.
func NewUseCase(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	transferRepo repository.StockTransferRepository,
	backorderRepo repository.BackorderRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *UseCase {
	return &UseCase{
		stockRepo:     stockRepo,
		movementRepo:  movementRepo,
		transferRepo:  transferRepo,
		backorderRepo: backorderRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// joinMaps arma los índices producto/bodega por id para una pasada de reporte.
func (uc *UseCase) joinMaps() (map[string]*entity.Product, map[string]*entity.Warehouse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, nil, fmt.Errorf("report: listar productos: %w", err)
	}
	warehouses, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, nil, fmt.Errorf("report: listar bodegas: %w", err)
	}
	productByID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}
	warehouseByID := make(map[string]*entity.Warehouse, len(warehouses))
	for _, w := range warehouses {
		warehouseByID[w.ID] = w
	}
	return productByID, warehouseByID, nil
}

// ListStockLevels devuelve todas las filas de stock con nombres y banderas de
// alerta. Filas cuyo producto o bodega ya no existe salen con el nombre vacío.
func (uc *UseCase) ListStockLevels(ctx context.Context) ([]dto.StockLevelDTO, error) {
	rows, err := uc.stockRepo.List()
	if err != nil {
		return nil, fmt.Errorf("report: listar stock: %w", err)
	}
	productByID, warehouseByID, err := uc.joinMaps()
	if err != nil {
		return nil, err
	}

	out := make([]dto.StockLevelDTO, 0, len(rows))
	for _, row := range rows {
		product := productByID[row.ProductID]
		warehouse := warehouseByID[row.WarehouseID]
		status := domstock.Evaluate(row, product, warehouse)
		level := dto.StockLevelDTO{
			ProductID:   row.ProductID,
			WarehouseID: row.WarehouseID,
			Quantity:    row.Quantity,
			IsLow:       status.IsLow,
			IsFull:      status.IsFull,
		}
		if product != nil {
			level.ProductName = product.Name
		}
		if warehouse != nil {
			level.WarehouseName = warehouse.Name
		}
		out = append(out, level)
	}
	return out, nil
}

// ListLowStock devuelve solo las filas con IsLow. Mismo insumo que
// ListStockLevels, por lo que dos llamadas sin mutaciones intermedias
// devuelven lo mismo.
func (uc *UseCase) ListLowStock(ctx context.Context) ([]dto.StockLevelDTO, error) {
	levels, err := uc.ListStockLevels(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockLevelDTO, 0)
	for _, level := range levels {
		if level.IsLow {
			out = append(out, level)
		}
	}
	return out, nil
}

// ListMovements devuelve el historial del libro de movimientos, del más
// reciente al más antiguo, con nombres resueltos cuando el join aplica.
func (uc *UseCase) ListMovements(ctx context.Context, limit, offset int) ([]dto.MovementDTO, error) {
	movements, err := uc.movementRepo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("report: listar movimientos: %w", err)
	}
	productByID, warehouseByID, err := uc.joinMaps()
	if err != nil {
		return nil, err
	}

	warehouseName := func(id *string) *string {
		if id == nil {
			return nil
		}
		if w, ok := warehouseByID[*id]; ok {
			return &w.Name
		}
		return nil
	}

	out := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		row := dto.MovementDTO{
			ID:                       m.ID,
			ProductID:                m.ProductID,
			SourceWarehouseID:        m.SourceWarehouseID,
			SourceWarehouseName:      warehouseName(m.SourceWarehouseID),
			DestinationWarehouseID:   m.DestinationWarehouseID,
			DestinationWarehouseName: warehouseName(m.DestinationWarehouseID),
			Quantity:                 m.Quantity,
			Status:                   m.Status,
			CreatedAt:                m.CreatedAt,
		}
		if p, ok := productByID[m.ProductID]; ok {
			row.ProductName = p.Name
		}
		out = append(out, row)
	}
	return out, nil
}

// ListBackorders devuelve los backorders en el estado dado, con el nombre de
// producto resuelto. Con status vacío se asume Pending, que es lo que un
// operador quiere ver.
func (uc *UseCase) ListBackorders(ctx context.Context, status string, limit, offset int) ([]dto.BackorderDTO, error) {
	if status == "" {
		status = entity.BackorderStatusPending
	}
	backorders, err := uc.backorderRepo.ListByStatus(status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("report: listar backorders: %w", err)
	}
	productByID, _, err := uc.joinMaps()
	if err != nil {
		return nil, err
	}

	out := make([]dto.BackorderDTO, 0, len(backorders))
	for _, b := range backorders {
		row := dto.BackorderDTO{
			ID:          b.ID,
			ProductID:   b.ProductID,
			WarehouseID: b.WarehouseID,
			Quantity:    b.Quantity,
			Status:      b.Status,
			CreatedAt:   b.CreatedAt,
		}
		if p, ok := productByID[b.ProductID]; ok {
			row.ProductName = p.Name
		}
		out = append(out, row)
	}
	return out, nil
}

// ListTransfers devuelve el historial de traslados (registros de auditoría).
func (uc *UseCase) ListTransfers(ctx context.Context, limit, offset int) ([]dto.TransferResponse, error) {
	transfers, err := uc.transferRepo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("report: listar traslados: %w", err)
	}
	out := make([]dto.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, dto.TransferResponse{
			ID:                     t.ID,
			ProductID:              t.ProductID,
			SourceWarehouseID:      t.SourceWarehouseID,
			DestinationWarehouseID: t.DestinationWarehouseID,
			Quantity:               t.Quantity,
			Status:                 t.Status,
			TransferDate:           t.TransferDate,
		})
	}
	return out, nil
}

// InventoryValuation calcula Σ cantidad × costo agrupado por producto.
// Filas cuyo producto no resuelve se omiten (no hay costo que aplicar).
func (uc *UseCase) InventoryValuation(ctx context.Context) ([]dto.InventoryValueDTO, error) {
	rows, err := uc.stockRepo.List()
	if err != nil {
		return nil, fmt.Errorf("report: listar stock: %w", err)
	}
	productByID, _, err := uc.joinMaps()
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string]*dto.InventoryValueDTO)
	for _, row := range rows {
		product, ok := productByID[row.ProductID]
		if !ok {
			continue
		}
		value := decimal.NewFromInt(row.Quantity).Mul(product.CostPrice)
		if agg, ok := byProduct[product.ID]; ok {
			agg.TotalQuantity += row.Quantity
			agg.TotalValue = agg.TotalValue.Add(value)
			continue
		}
		byProduct[product.ID] = &dto.InventoryValueDTO{
			ProductID:     product.ID,
			ProductName:   product.Name,
			TotalQuantity: row.Quantity,
			TotalValue:    value,
		}
	}

	out := make([]dto.InventoryValueDTO, 0, len(byProduct))
	for _, agg := range byProduct {
		out = append(out, *agg)
	}
	// Orden estable para que el reporte sea reproducible entre llamadas.
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}
