package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodegas-api/internal/application/dto"
	"github.com/jhoicas/Bodegas-api/internal/application/report"
)

// ReportHandler maneja las proyecciones de reporte (protegido, solo lectura).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockMovements godoc
// @Summary      Libro de movimientos de stock
// @Description  Asientos del más reciente al más antiguo, con nombres de
//
//	producto y bodega resueltos cuando las referencias aplican.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.MovementDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-movements [get]
func (h *ReportHandler) StockMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	movements, err := h.uc.ListMovements(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(movements), "movements": movements})
}

// InventoryValue godoc
// @Summary      Valorización del inventario por producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.InventoryValueDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory-value [get]
func (h *ReportHandler) InventoryValue(c *fiber.Ctx) error {
	values, err := h.uc.InventoryValuation(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(values)
}
