// Package auth define el conjunto de capacidades por rol. La autorización se
// decide una sola vez en el borde HTTP consultando este mapa, en lugar de
// repetir comparaciones de strings de rol en cada handler.
package auth

// Capability identifica una operación autorizable del núcleo.
type Capability string

const (
	CapStockWrite    Capability = "stock:write"    // entradas y ajustes de stock
	CapStockTransfer Capability = "stock:transfer" // traslados entre bodegas
	CapStockRead     Capability = "stock:read"     // niveles y alertas
	CapOrderPlace    Capability = "orders:place"
	CapOrderShip     Capability = "orders:ship"
	CapReportRead    Capability = "reports:read" // historial y valorización
	CapPurchaseWrite Capability = "purchases:write"
)

// Roles conocidos de la aplicación.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// roleCapabilities mapa rol -> operaciones permitidas.
var roleCapabilities = map[string]map[Capability]struct{}{
	RoleAdmin: {
		CapStockWrite: {}, CapStockTransfer: {}, CapStockRead: {},
		CapOrderPlace: {}, CapOrderShip: {}, CapReportRead: {}, CapPurchaseWrite: {},
	},
	RoleBodeguero: {
		CapStockWrite: {}, CapStockTransfer: {}, CapStockRead: {},
		CapOrderShip: {}, CapReportRead: {}, CapPurchaseWrite: {},
	},
	RoleVendedor: {
		CapStockRead: {}, CapOrderPlace: {}, CapOrderShip: {},
	},
}

// RoleHas indica si el rol tiene la capacidad. Roles desconocidos no tienen
// ninguna.
func RoleHas(role string, cap Capability) bool {
	caps, ok := roleCapabilities[role]
	if !ok {
		return false
	}
	_, ok = caps[cap]
	return ok
}
