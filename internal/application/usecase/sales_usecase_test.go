package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/application/usecase"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/infrastructure/memory"
)

type salesFixture struct {
	uc     *usecase.SalesUseCase
	sales  *memory.SalesRepo
	stores *memory.StoreRepo
}

func newSalesFixture() *salesFixture {
	sales := memory.NewSalesRepository()
	stores := memory.NewStoreRepository()
	return &salesFixture{
		uc:     usecase.NewSalesUseCase(sales, stores),
		sales:  sales,
		stores: stores,
	}
}

func (f *salesFixture) seedStore(t *testing.T) *entity.Store {
	t.Helper()
	s := &entity.Store{Name: "Centro", OperatingHours: 8}
	require.NoError(t, f.stores.Create(s))
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesCreate_IncrementaContadorDeTienda(t *testing.T) {
	f := newSalesFixture()
	store := f.seedStore(t)

	out, err := f.uc.Create(dto.CreateSaleRequest{
		PaymentMethod: "Efectivo",
		TotalAmount:   decimal.RequireFromString("45.90"),
		StoreID:       store.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.False(t, out.DateOfSale.IsZero(), "la fecha de venta la asigna el servidor")

	got, err := f.stores.GetByID(store.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalSales, "cada venta suma 1 al contador de la tienda")
}

func TestSalesCreate_MontoNegativoSeRechaza(t *testing.T) {
	f := newSalesFixture()
	store := f.seedStore(t)

	_, err := f.uc.Create(dto.CreateSaleRequest{
		TotalAmount: decimal.NewFromInt(-1),
		StoreID:     store.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := f.stores.GetByID(store.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalSales)
}

func TestSalesCreate_TiendaInexistente(t *testing.T) {
	f := newSalesFixture()

	_, err := f.uc.Create(dto.CreateSaleRequest{
		TotalAmount: decimal.NewFromInt(10),
		StoreID:     404,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := f.uc.List(nil, nil, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Items, "no debe registrarse venta alguna")
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesList_FiltraPorVentana(t *testing.T) {
	f := newSalesFixture()
	store := f.seedStore(t)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, amount := range []string{"10", "20", "30"} {
		require.NoError(t, f.sales.Create(&entity.Sale{
			TotalAmount: decimal.RequireFromString(amount),
			StoreID:     store.ID,
			DateOfSale:  base.AddDate(0, 0, i),
		}))
	}

	start := base.AddDate(0, 0, 1)
	end := base.AddDate(0, 0, 2) // la cota superior es exclusiva
	out, err := f.uc.List(&start, &end, 20, 0)
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].TotalAmount.Equal(decimal.RequireFromString("20")))
}

func TestSalesList_OrdenDescendentePorFecha(t *testing.T) {
	f := newSalesFixture()
	store := f.seedStore(t)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, amount := range []string{"10", "20", "30"} {
		require.NoError(t, f.sales.Create(&entity.Sale{
			TotalAmount: decimal.RequireFromString(amount),
			StoreID:     store.ID,
			DateOfSale:  base.AddDate(0, 0, i),
		}))
	}

	out, err := f.uc.List(nil, nil, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.True(t, out.Items[0].TotalAmount.Equal(decimal.RequireFromString("30")),
		"la venta más reciente va primero")
}
