package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodegas-api/internal/application/dto"
	"github.com/jhoicas/Bodegas-api/internal/application/report"
	"github.com/jhoicas/Bodegas-api/internal/application/stock"
	"github.com/jhoicas/Bodegas-api/internal/domain"
)

// StockHandler maneja las peticiones HTTP del motor de stock (protegido).
type StockHandler struct {
	addUC      *stock.AddStockUseCase
	transferUC *stock.TransferStockUseCase
	reportUC   *report.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(addUC *stock.AddStockUseCase, transferUC *stock.TransferStockUseCase, reportUC *report.UseCase) *StockHandler {
	return &StockHandler{addUC: addUC, transferUC: transferUC, reportUC: reportUC}
}

// AddStock godoc
// @Summary      Registrar entrada o ajuste de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "product_id, warehouse_id, quantity (negativo = ajuste hacia abajo)"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	row, err := h.addUC.Add(c.Context(), in.ProductID, in.WarehouseID, in.Quantity, GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StockResponse{
		ProductID:   row.ProductID,
		WarehouseID: row.WarehouseID,
		Quantity:    row.Quantity,
		UpdatedAt:   row.UpdatedAt,
	})
}

// ListStock godoc
// @Summary      Niveles de stock por producto y bodega
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockLevelDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) ListStock(c *fiber.Ctx) error {
	levels, err := h.reportUC.ListStockLevels(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(levels)
}

// Transfer godoc
// @Summary      Trasladar stock entre bodegas
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "product_id, source_warehouse_id, destination_warehouse_id, quantity, status"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock/transfer [post]
func (h *StockHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	transfer, err := h.transferUC.Transfer(c.Context(), stock.TransferInput{
		ProductID:              in.ProductID,
		SourceWarehouseID:      in.SourceWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		Quantity:               in.Quantity,
		Status:                 in.Status,
		ActorID:                GetUserID(c),
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResponse{
		ID:                     transfer.ID,
		ProductID:              transfer.ProductID,
		SourceWarehouseID:      transfer.SourceWarehouseID,
		DestinationWarehouseID: transfer.DestinationWarehouseID,
		Quantity:               transfer.Quantity,
		Status:                 transfer.Status,
		TransferDate:           transfer.TransferDate,
	})
}

// TransferHistory godoc
// @Summary      Historial de traslados
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.TransferResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/transfer/history [get]
func (h *StockHandler) TransferHistory(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	transfers, err := h.reportUC.ListTransfers(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(transfers)
}

// LowStockAlerts godoc
// @Summary      Filas de stock con bandera de bajo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockLevelDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/low-stock-alerts [get]
func (h *StockHandler) LowStockAlerts(c *fiber.Ctx) error {
	levels, err := h.reportUC.ListLowStock(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(levels), "alerts": levels})
}

// Backorders godoc
// @Summary      Backorders registrados
// @Description  Demanda insatisfecha dejada por las reservas. Sin status se
//
//	listan los Pending.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Pending | Fulfilled | Cancelled"
// @Param        limit   query  int     false  "máximo de filas (default 50)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}   dto.BackorderDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/backorders [get]
func (h *StockHandler) Backorders(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	backorders, err := h.reportUC.ListBackorders(c.Context(), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(backorders)
}

// mapDomainError traduce errores de dominio a respuestas HTTP. Compartido por
// todos los handlers protegidos.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrInvariantViolation):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVARIANT", Message: "la operación dejaría stock negativo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
