package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodegas-api/internal/application/stock"
	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/pkg/logger"
)

func newTransferUC(s *memState, audit *fakeAudit) *stock.TransferStockUseCase {
	products := fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Tornillo M8"},
	}}
	return stock.NewTransferStockUseCase(fakeTxRunner{s}, products, audit, logger.Nop())
}

func validTransfer() stock.TransferInput {
	return stock.TransferInput{
		ProductID:              "prod-1",
		SourceWarehouseID:      "bodega-a",
		DestinationWarehouseID: "bodega-b",
		Quantity:               4,
		Status:                 entity.MovementStatusInTransit,
		ActorID:                "user-1",
	}
}

func TestTransfer_CaminoCompleto_DebitaYAcredita(t *testing.T) {
	s := newMemState()
	s.seedStock("prod-1", "bodega-a", 10)
	audit := &fakeAudit{}
	uc := newTransferUC(s, audit)

	transfer, err := uc.Transfer(context.Background(), validTransfer())
	require.NoError(t, err)
	require.NotNil(t, transfer)
	assert.NotEmpty(t, transfer.ID)

	srcQty, _ := s.quantity("prod-1", "bodega-a")
	dstQty, _ := s.quantity("prod-1", "bodega-b")
	assert.Equal(t, int64(6), srcQty)
	assert.Equal(t, int64(4), dstQty)

	// Un registro de traslado y exactamente dos asientos que suman cero.
	require.Len(t, s.transfers, 1)
	require.Len(t, s.movements, 2)
	var sum int64
	for _, m := range s.movements {
		sum += m.Quantity
	}
	assert.Equal(t, int64(0), sum, "los asientos de un traslado deben sumar cero")

	salida, llegada := s.movements[0], s.movements[1]
	assert.Equal(t, int64(-4), salida.Quantity)
	assert.Equal(t, entity.MovementStatusInTransit, salida.Status)
	require.NotNil(t, salida.SourceWarehouseID)
	assert.Equal(t, "bodega-a", *salida.SourceWarehouseID)
	assert.Nil(t, salida.DestinationWarehouseID)

	assert.Equal(t, int64(4), llegada.Quantity)
	assert.Equal(t, entity.MovementStatusReceived, llegada.Status)
	require.NotNil(t, llegada.DestinationWarehouseID)
	assert.Equal(t, "bodega-b", *llegada.DestinationWarehouseID)
	assert.Nil(t, llegada.SourceWarehouseID)

	assert.Equal(t, []string{"Stock Transfer"}, audit.actions)
}

// Sin fila de stock en origen, el débito y su asiento se omiten: solo entra
// stock al destino con su asiento de llegada.
func TestTransfer_OrigenSinFila_OmiteDebito(t *testing.T) {
	s := newMemState()
	uc := newTransferUC(s, &fakeAudit{})

	_, err := uc.Transfer(context.Background(), validTransfer())
	require.NoError(t, err)

	_, srcExists := s.quantity("prod-1", "bodega-a")
	assert.False(t, srcExists, "el origen no debe materializarse")

	dstQty, _ := s.quantity("prod-1", "bodega-b")
	assert.Equal(t, int64(4), dstQty)

	require.Len(t, s.movements, 1, "solo el asiento de llegada")
	assert.Equal(t, int64(4), s.movements[0].Quantity)
	assert.Equal(t, entity.MovementStatusReceived, s.movements[0].Status)
	require.Len(t, s.transfers, 1, "el registro de traslado es incondicional")
}

// El débito puede dejar el origen negativo; se preserva, no se rechaza.
func TestTransfer_OrigenInsuficiente_QuedaNegativo(t *testing.T) {
	s := newMemState()
	s.seedStock("prod-1", "bodega-a", 2)
	uc := newTransferUC(s, &fakeAudit{})

	in := validTransfer()
	in.Quantity = 5
	_, err := uc.Transfer(context.Background(), in)
	require.NoError(t, err)

	srcQty, _ := s.quantity("prod-1", "bodega-a")
	dstQty, _ := s.quantity("prod-1", "bodega-b")
	assert.Equal(t, int64(-3), srcQty)
	assert.Equal(t, int64(5), dstQty)
	assert.Len(t, s.movements, 2)
}

func TestTransfer_DestinoExistente_Acumula(t *testing.T) {
	s := newMemState()
	s.seedStock("prod-1", "bodega-a", 10)
	s.seedStock("prod-1", "bodega-b", 7)
	uc := newTransferUC(s, &fakeAudit{})

	_, err := uc.Transfer(context.Background(), validTransfer())
	require.NoError(t, err)

	dstQty, _ := s.quantity("prod-1", "bodega-b")
	assert.Equal(t, int64(11), dstQty)
}

func TestTransfer_ProductoDesconocido_Rechaza(t *testing.T) {
	s := newMemState()
	s.seedStock("prod-9", "bodega-a", 10)
	uc := newTransferUC(s, &fakeAudit{})

	in := validTransfer()
	in.ProductID = "prod-9" // no está en el catálogo del fake
	_, err := uc.Transfer(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, s.transfers)
	assert.Empty(t, s.movements)
	qty, _ := s.quantity("prod-9", "bodega-a")
	assert.Equal(t, int64(10), qty, "nada debe mutar si el producto no existe")
}

func TestTransfer_EntradaInvalida(t *testing.T) {
	s := newMemState()
	uc := newTransferUC(s, &fakeAudit{})

	cases := []struct {
		name   string
		mutate func(*stock.TransferInput)
	}{
		{"producto vacío", func(in *stock.TransferInput) { in.ProductID = "" }},
		{"origen vacío", func(in *stock.TransferInput) { in.SourceWarehouseID = "" }},
		{"destino vacío", func(in *stock.TransferInput) { in.DestinationWarehouseID = "" }},
		{"cantidad cero", func(in *stock.TransferInput) { in.Quantity = 0 }},
		{"cantidad negativa", func(in *stock.TransferInput) { in.Quantity = -1 }},
		{"estado desconocido", func(in *stock.TransferInput) { in.Status = "Teleported" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validTransfer()
			tc.mutate(&in)
			_, err := uc.Transfer(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, s.transfers)
	assert.Empty(t, s.movements)
}
