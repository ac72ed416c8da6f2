package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Bodegas-api/internal/application/auth"
)

func TestRoleHas(t *testing.T) {
	cases := []struct {
		role string
		cap  auth.Capability
		want bool
	}{
		{auth.RoleAdmin, auth.CapStockTransfer, true},
		{auth.RoleAdmin, auth.CapOrderPlace, true},
		{auth.RoleBodeguero, auth.CapStockWrite, true},
		{auth.RoleBodeguero, auth.CapStockTransfer, true},
		{auth.RoleBodeguero, auth.CapOrderPlace, false},
		{auth.RoleVendedor, auth.CapOrderPlace, true},
		{auth.RoleVendedor, auth.CapStockRead, true},
		{auth.RoleVendedor, auth.CapStockTransfer, false},
		{auth.RoleVendedor, auth.CapPurchaseWrite, false},
		{"", auth.CapStockRead, false},
		{"superusuario", auth.CapStockRead, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, auth.RoleHas(tc.role, tc.cap),
			"rol %q capacidad %q", tc.role, tc.cap)
	}
}
