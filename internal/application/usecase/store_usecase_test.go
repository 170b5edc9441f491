package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/application/usecase"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/infrastructure/memory"
)

func newStoreUC() (*usecase.StoreUseCase, *memory.StoreRepo, *memory.StaffRepo) {
	stores := memory.NewStoreRepository()
	stock := memory.NewStockLocationRepository()
	products := memory.NewProductRepository()
	staff := memory.NewStaffRepository()
	return usecase.NewStoreUseCase(stores, stock, products, staff), stores, staff
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestStoreCreate_Valida(t *testing.T) {
	uc, _, _ := newStoreUC()

	out, err := uc.Create(dto.CreateStoreRequest{
		Name:           "Sucursal Centro",
		Location:       "Bogotá",
		ContactNumber:  "+573001234567",
		OperatingHours: 12,
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, 0, out.TotalSales, "el contador de ventas arranca en cero")
}

func TestStoreCreate_RechazaHorasFueraDeRango(t *testing.T) {
	uc, _, _ := newStoreUC()

	for _, hours := range []int{0, 25, -1} {
		_, err := uc.Create(dto.CreateStoreRequest{Name: "X", OperatingHours: hours})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "horas %d deben rechazarse", hours)
	}
}

func TestStoreCreate_RechazaTelefonoInvalido(t *testing.T) {
	uc, _, _ := newStoreUC()

	for _, number := range []string{"abc", "+57-300-123", "1234567890123456", "+"} {
		_, err := uc.Create(dto.CreateStoreRequest{
			Name: "X", OperatingHours: 8, ContactNumber: number,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "teléfono %q debe rechazarse", number)
	}
}

func TestStoreCreate_GerenteInexistente(t *testing.T) {
	uc, _, _ := newStoreUC()
	ghost := int64(99)

	_, err := uc.Create(dto.CreateStoreRequest{Name: "X", OperatingHours: 8, ManagerID: &ghost})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreUpdate_SinCamposSeRechaza(t *testing.T) {
	uc, _, _ := newStoreUC()
	created, err := uc.Create(dto.CreateStoreRequest{Name: "X", OperatingHours: 8})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateStoreRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStoreUpdate_AplicaSoloCamposPresentes(t *testing.T) {
	uc, _, _ := newStoreUC()
	created, err := uc.Create(dto.CreateStoreRequest{
		Name: "Original", Location: "Cali", OperatingHours: 8,
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateStoreRequest{Name: strPtr("Renombrada")})
	require.NoError(t, err)
	assert.Equal(t, "Renombrada", out.Name)
	assert.Equal(t, "Cali", out.Location, "los campos ausentes no cambian")
	assert.Equal(t, 8, out.OperatingHours)
}

func TestStoreUpdate_HorasInvalidasNoPersisten(t *testing.T) {
	uc, _, _ := newStoreUC()
	created, err := uc.Create(dto.CreateStoreRequest{Name: "X", OperatingHours: 8})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateStoreRequest{OperatingHours: intPtr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.OperatingHours, "el valor original debe conservarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// ViewPerformance
// ──────────────────────────────────────────────────────────────────────────────

func TestStoreViewPerformance_PromedioPorHora(t *testing.T) {
	uc, stores, _ := newStoreUC()
	store := &entity.Store{Name: "Norte", OperatingHours: 8, TotalSales: 20}
	require.NoError(t, stores.Create(store))

	out, err := uc.ViewPerformance(store.ID)
	require.NoError(t, err)

	assert.Equal(t, 20, out.TotalSales)
	assert.True(t, out.AverageSalesPerHour.Equal(decimal.RequireFromString("2.5")),
		"20 ventas / 8 horas = 2.5; got %s", out.AverageSalesPerHour)
}

func TestStoreViewPerformance_HorasCeroSinDivision(t *testing.T) {
	uc, stores, _ := newStoreUC()
	// Fila legada sin horas de operación cargadas.
	store := &entity.Store{Name: "Legacy", OperatingHours: 0, TotalSales: 10}
	require.NoError(t, stores.Create(store))

	out, err := uc.ViewPerformance(store.ID)
	require.NoError(t, err)
	assert.True(t, out.AverageSalesPerHour.IsZero(), "con horas 0 el promedio es 0")
}

func TestStoreViewPerformance_TiendaInexistente(t *testing.T) {
	uc, _, _ := newStoreUC()
	_, err := uc.ViewPerformance(404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
