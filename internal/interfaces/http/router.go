package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodegas-api/internal/application/auth"
	"github.com/jhoicas/Bodegas-api/internal/application/order"
	"github.com/jhoicas/Bodegas-api/internal/application/purchasing"
	"github.com/jhoicas/Bodegas-api/internal/application/report"
	"github.com/jhoicas/Bodegas-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AddStockUC      *stock.AddStockUseCase
	TransferStockUC *stock.TransferStockUseCase
	OrderUC         *order.UseCase
	PurchasingUC    *purchasing.UseCase
	ReportUC        *report.UseCase
	JWTSecret       string
}

// Router registra las rutas de la API. Todas requieren Bearer Token; cada
// grupo exige además la capacidad correspondiente al rol del token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Stock (motor de entradas, traslados y alertas)
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.AddStockUC, deps.TransferStockUC, deps.ReportUC)
	stockGroup.Post("/", RequireCapability(auth.CapStockWrite), stockHandler.AddStock)
	stockGroup.Get("/", RequireCapability(auth.CapStockRead), stockHandler.ListStock)
	stockGroup.Post("/transfer", RequireCapability(auth.CapStockTransfer), stockHandler.Transfer)
	stockGroup.Get("/transfer/history", RequireCapability(auth.CapStockRead), stockHandler.TransferHistory)
	stockGroup.Get("/low-stock-alerts", RequireCapability(auth.CapStockRead), stockHandler.LowStockAlerts)
	stockGroup.Get("/backorders", RequireCapability(auth.CapStockRead), stockHandler.Backorders)

	// Órdenes de cliente (reserva y despacho)
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", RequireCapability(auth.CapOrderPlace), orderHandler.Place)
	orders.Post("/:id/ship", RequireCapability(auth.CapOrderShip), orderHandler.Ship)

	// Reportes (solo lectura)
	reports := api.Group("/reports", RequireCapability(auth.CapReportRead))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock-movements", reportHandler.StockMovements)
	reports.Get("/inventory-value", reportHandler.InventoryValue)

	// Órdenes de compra a proveedor
	purchases := api.Group("/purchase-orders")
	purchaseHandler := NewPurchaseOrderHandler(deps.PurchasingUC)
	purchases.Post("/", RequireCapability(auth.CapPurchaseWrite), purchaseHandler.Create)
	purchases.Get("/", RequireCapability(auth.CapPurchaseWrite), purchaseHandler.List)
}
