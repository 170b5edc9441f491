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

func newPurchaseOrderUC(t *testing.T) (*usecase.PurchaseOrderUseCase, *entity.Product, *entity.Supplier) {
	t.Helper()
	orders := memory.NewPurchaseOrderRepository()
	products := memory.NewProductRepository()
	suppliers := memory.NewSupplierRepository()

	supplier := &entity.Supplier{Name: "Distribuidora Andes"}
	require.NoError(t, suppliers.Create(supplier))
	product := &entity.Product{Name: "Café", Price: decimal.NewFromInt(10), SupplierID: &supplier.ID}
	require.NoError(t, products.Create(product))

	return usecase.NewPurchaseOrderUseCase(orders, products), product, supplier
}

func TestPurchaseOrderCreate_EstadoPorDefectoYProveedorDelProducto(t *testing.T) {
	uc, product, supplier := newPurchaseOrderUC(t)

	out, err := uc.Create(dto.CreatePurchaseOrderRequest{
		ProductID:   product.ID,
		TotalAmount: decimal.RequireFromString("120.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, out.Status)
	require.NotNil(t, out.SupplierID, "el proveedor se copia del producto")
	assert.Equal(t, supplier.ID, *out.SupplierID)
	assert.Nil(t, out.DeliveryDate, "la fecha de entrega queda en NULL hasta conocerse")
	assert.False(t, out.OrderDate.IsZero())
}

func TestPurchaseOrderCreate_ProductoInexistente(t *testing.T) {
	uc, _, _ := newPurchaseOrderUC(t)

	_, err := uc.Create(dto.CreatePurchaseOrderRequest{ProductID: 404, TotalAmount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurchaseOrderCreate_MontoNegativoSeRechaza(t *testing.T) {
	uc, product, _ := newPurchaseOrderUC(t)

	_, err := uc.Create(dto.CreatePurchaseOrderRequest{ProductID: product.ID, TotalAmount: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseOrderGetStatus(t *testing.T) {
	uc, product, _ := newPurchaseOrderUC(t)
	created, err := uc.Create(dto.CreatePurchaseOrderRequest{ProductID: product.ID, TotalAmount: decimal.NewFromInt(50)})
	require.NoError(t, err)

	status, err := uc.GetStatus(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, status)

	_, err = uc.GetStatus(404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurchaseOrderUpdate_MarcaEntregada(t *testing.T) {
	uc, product, _ := newPurchaseOrderUC(t)
	created, err := uc.Create(dto.CreatePurchaseOrderRequest{ProductID: product.ID, TotalAmount: decimal.NewFromInt(50)})
	require.NoError(t, err)

	delivered := entity.OrderStatusDelivered
	when := time.Now()
	out, err := uc.Update(created.ID, dto.UpdatePurchaseOrderRequest{
		Status:       &delivered,
		DeliveryDate: &when,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusDelivered, out.Status)
	require.NotNil(t, out.DeliveryDate)
	assert.True(t, out.DeliveryDate.Equal(when))
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(50)), "el monto no cambia si no viene en la petición")
}

func TestPurchaseOrderUpdate_EstadoVacioSeRechaza(t *testing.T) {
	uc, product, _ := newPurchaseOrderUC(t)
	created, err := uc.Create(dto.CreatePurchaseOrderRequest{ProductID: product.ID, TotalAmount: decimal.NewFromInt(50)})
	require.NoError(t, err)

	empty := ""
	_, err = uc.Update(created.ID, dto.UpdatePurchaseOrderRequest{Status: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
