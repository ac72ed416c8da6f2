package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodegas-api/internal/application/stock"
	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
)

func newAddUC(s *memState, audit *fakeAudit) *stock.AddStockUseCase {
	products := fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Tornillo M8"},
	}}
	return stock.NewAddStockUseCase(fakeTxRunner{s}, products, audit)
}

func TestAdd_CreaFilaYAsiento(t *testing.T) {
	s := newMemState()
	audit := &fakeAudit{}
	uc := newAddUC(s, audit)

	row, err := uc.Add(context.Background(), "prod-1", "bodega-1", 15, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(15), row.Quantity)

	qty, _ := s.quantity("prod-1", "bodega-1")
	assert.Equal(t, int64(15), qty)

	// Exactamente un asiento, con ambas bodegas apuntando a la misma.
	require.Len(t, s.movements, 1)
	mov := s.movements[0]
	assert.Equal(t, int64(15), mov.Quantity)
	assert.Equal(t, entity.MovementStatusReceived, mov.Status)
	require.NotNil(t, mov.SourceWarehouseID)
	require.NotNil(t, mov.DestinationWarehouseID)
	assert.Equal(t, "bodega-1", *mov.SourceWarehouseID)
	assert.Equal(t, "bodega-1", *mov.DestinationWarehouseID)

	assert.Equal(t, []string{"Stock Added"}, audit.actions)
}

func TestAdd_AcumulaSobreFilaExistente(t *testing.T) {
	s := newMemState()
	s.seedStock("prod-1", "bodega-1", 10)
	uc := newAddUC(s, &fakeAudit{})

	row, err := uc.Add(context.Background(), "prod-1", "bodega-1", 5, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(15), row.Quantity)
}

func TestAdd_AjusteNegativo_Descuenta(t *testing.T) {
	s := newMemState()
	s.seedStock("prod-1", "bodega-1", 10)
	uc := newAddUC(s, &fakeAudit{})

	row, err := uc.Add(context.Background(), "prod-1", "bodega-1", -4, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), row.Quantity)

	require.Len(t, s.movements, 1)
	assert.Equal(t, int64(-4), s.movements[0].Quantity, "el asiento conserva el signo del ajuste")
}

// Un ajuste que dejaría el stock negativo falla sin aplicar nada: ni la fila
// ni el asiento.
func TestAdd_AjusteQueDejaNegativo_Rechaza(t *testing.T) {
	s := newMemState()
	s.seedStock("prod-1", "bodega-1", 3)
	uc := newAddUC(s, &fakeAudit{})

	_, err := uc.Add(context.Background(), "prod-1", "bodega-1", -5, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)

	qty, _ := s.quantity("prod-1", "bodega-1")
	assert.Equal(t, int64(3), qty, "el stock no debe cambiar")
	assert.Empty(t, s.movements, "no debe quedar asiento de una entrada rechazada")
}

func TestAdd_EntradaInvalida(t *testing.T) {
	s := newMemState()
	uc := newAddUC(s, &fakeAudit{})

	_, err := uc.Add(context.Background(), "prod-1", "bodega-1", 0, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero no es una entrada")

	_, err = uc.Add(context.Background(), "", "bodega-1", 5, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Add(context.Background(), "prod-desconocido", "bodega-1", 5, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el producto debe existir en el catálogo")

	assert.Empty(t, s.stocks)
	assert.Empty(t, s.movements)
}
