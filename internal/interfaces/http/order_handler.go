package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodegas-api/internal/application/dto"
	"github.com/jhoicas/Bodegas-api/internal/application/order"
)

// OrderHandler maneja las peticiones HTTP de órdenes de cliente (protegido).
type OrderHandler struct {
	uc *order.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Place godoc
// @Summary      Colocar una orden de cliente
// @Description  Crea la orden y reserva stock línea por línea. El faltante
//
//	queda backordeado por línea; la orden nunca falla por falta de stock.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlaceOrderRequest  true  "customer_id, warehouse_id, items"
// @Success      201   {object}  dto.PlaceOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]order.PlaceOrderItemInput, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, order.PlaceOrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	placed, err := h.uc.Place(c.Context(), order.PlaceOrderInput{
		CustomerID:  in.CustomerID,
		WarehouseID: in.WarehouseID,
		Items:       items,
		ActorID:     GetUserID(c),
	})
	if err != nil {
		return mapDomainError(c, err)
	}

	out := dto.PlaceOrderResponse{
		OrderID:   placed.Order.ID,
		Status:    placed.Order.Status,
		OrderDate: placed.Order.OrderDate,
		Items:     make([]dto.OrderItemResponse, 0, len(placed.Items)),
	}
	for _, item := range placed.Items {
		out.Items = append(out.Items, dto.OrderItemResponse{
			ProductID:           item.ProductID,
			QuantityOrdered:     item.QuantityOrdered,
			QuantityReserved:    item.QuantityReserved,
			QuantityBackordered: item.QuantityBackordered,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Ship godoc
// @Summary      Despachar una orden
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/ship [post]
func (h *OrderHandler) Ship(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if err := h.uc.Ship(c.Context(), orderID); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "orden despachada"})
}
