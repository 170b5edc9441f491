package usecase_test

import (
	"context"
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

type staffFixture struct {
	uc    *usecase.StaffUseCase
	staff *memory.StaffRepo
	depts *memory.DepartmentRepo
	sales *memory.SalesRepo
}

func newStaffFixture() *staffFixture {
	staff := memory.NewStaffRepository()
	depts := memory.NewDepartmentRepository()
	sales := memory.NewSalesRepository()
	analytics := memory.NewAnalyticsRepository(
		sales,
		memory.NewStoreRepository(),
		memory.NewProductRepository(),
		memory.NewPurchaseOrderRepository(),
	)
	return &staffFixture{
		uc:    usecase.NewStaffUseCase(staff, depts, analytics),
		staff: staff,
		depts: depts,
		sales: sales,
	}
}

func (f *staffFixture) seedStaff(t *testing.T, name string, salary int) *entity.Staff {
	t.Helper()
	s := &entity.Staff{Name: name, Role: "Vendedor", Salary: salary, HireDate: time.Now()}
	require.NoError(t, f.staff.Create(s))
	return s
}

func (f *staffFixture) seedSale(t *testing.T, staffID int64, amount string, when time.Time) {
	t.Helper()
	require.NoError(t, f.sales.Create(&entity.Sale{
		TotalAmount: decimal.RequireFromString(amount),
		StoreID:     1,
		StaffID:     &staffID,
		DateOfSale:  when,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update / AssignDepartment
// ──────────────────────────────────────────────────────────────────────────────

func TestStaffCreate_SalarioNegativoSeRechaza(t *testing.T) {
	f := newStaffFixture()
	_, err := f.uc.Create(dto.CreateStaffRequest{Name: "Ana", Salary: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStaffCreate_DepartamentoInexistente(t *testing.T) {
	f := newStaffFixture()
	ghost := int64(42)
	_, err := f.uc.Create(dto.CreateStaffRequest{Name: "Ana", Salary: 1000, DepartmentID: &ghost})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStaffUpdate_SinCamposSeRechaza(t *testing.T) {
	f := newStaffFixture()
	s := f.seedStaff(t, "Ana", 1000)

	_, err := f.uc.Update(s.ID, dto.UpdateStaffRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStaffAssignDepartment_Asigna(t *testing.T) {
	f := newStaffFixture()
	s := f.seedStaff(t, "Ana", 1000)
	dept := &entity.Department{Name: "Ventas", Budget: 5000}
	require.NoError(t, f.depts.Create(dept))

	out, err := f.uc.AssignDepartment(s.ID, dept.ID)
	require.NoError(t, err)
	require.NotNil(t, out.DepartmentID)
	assert.Equal(t, dept.ID, *out.DepartmentID)
}

func TestStaffAssignDepartment_DepartamentoInexistente(t *testing.T) {
	f := newStaffFixture()
	s := f.seedStaff(t, "Ana", 1000)

	_, err := f.uc.AssignDepartment(s.ID, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.uc.GetByID(s.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DepartmentID, "el empleado queda sin departamento")
}

// ──────────────────────────────────────────────────────────────────────────────
// ViewPerformance
// ──────────────────────────────────────────────────────────────────────────────

func TestStaffViewPerformance_IndiceNormalizadoPorSalario(t *testing.T) {
	f := newStaffFixture()
	s := f.seedStaff(t, "Ana", 1000)
	now := time.Now()
	f.seedSale(t, s.ID, "300", now.AddDate(0, 0, -1))
	f.seedSale(t, s.ID, "200", now.AddDate(0, 0, -2))
	// Venta de otro empleado: no debe contarse.
	other := f.seedStaff(t, "Luis", 800)
	f.seedSale(t, other.ID, "999", now.AddDate(0, 0, -1))

	out, err := f.uc.ViewPerformance(context.Background(), s.ID, 30)
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalTransactions)
	assert.True(t, out.PeriodTotalSales.Equal(decimal.RequireFromString("500")),
		"total esperado 500, got %s", out.PeriodTotalSales)
	assert.True(t, out.AveragePerSale.Equal(decimal.RequireFromString("250")))
	assert.True(t, out.SalesPerDay.Equal(decimal.RequireFromString("16.67")),
		"500/30 redondeado a 2 decimales; got %s", out.SalesPerDay)
	assert.True(t, out.PerformanceIndex.Equal(decimal.RequireFromString("0.5")),
		"500/1000 = 0.5; got %s", out.PerformanceIndex)
}

func TestStaffViewPerformance_SalarioCeroIndiceCero(t *testing.T) {
	f := newStaffFixture()
	s := f.seedStaff(t, "Becario", 0)
	f.seedSale(t, s.ID, "100", time.Now().AddDate(0, 0, -1))

	out, err := f.uc.ViewPerformance(context.Background(), s.ID, 30)
	require.NoError(t, err)
	assert.True(t, out.PerformanceIndex.IsZero(), "con salario 0 el índice es 0, no división por cero")
}

func TestStaffViewPerformance_DiasNoPositivosUsan30(t *testing.T) {
	f := newStaffFixture()
	s := f.seedStaff(t, "Ana", 1000)

	out, err := f.uc.ViewPerformance(context.Background(), s.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 30, out.DateRangeDays)
}

func TestStaffViewPerformance_VentasFueraDeVentanaNoCuentan(t *testing.T) {
	f := newStaffFixture()
	s := f.seedStaff(t, "Ana", 1000)
	f.seedSale(t, s.ID, "100", time.Now().AddDate(0, 0, -40))

	out, err := f.uc.ViewPerformance(context.Background(), s.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalTransactions)
	assert.True(t, out.PeriodTotalSales.IsZero())
}

func TestStaffViewPerformance_EmpleadoInexistente(t *testing.T) {
	f := newStaffFixture()
	_, err := f.uc.ViewPerformance(context.Background(), 404, 30)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
