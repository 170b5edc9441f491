package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/application/inventory"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/jhoicas/erp-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type transferFixture struct {
	products  *memory.ProductRepo
	stores    *memory.StoreRepo
	stock     *memory.StockLocationRepo
	movements *memory.StockMovementRepo
	uc        *inventory.TransferStockUseCase
}

func newTransferFixture() *transferFixture {
	f := &transferFixture{
		products:  memory.NewProductRepository(),
		stores:    memory.NewStoreRepository(),
		stock:     memory.NewStockLocationRepository(),
		movements: memory.NewStockMovementRepository(),
	}
	runner := memory.NewTxRunner(f.stock, f.movements)
	f.uc = inventory.NewTransferStockUseCase(runner, f.products, f.stores)
	return f
}

// seed crea un producto y dos tiendas; carga qty unidades en la primera.
func (f *transferFixture) seed(t *testing.T, qty int) (productID, fromID, toID int64) {
	t.Helper()
	p := &entity.Product{Name: "Taladro", Price: decimal.NewFromInt(120), CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, f.products.Create(p))

	from := &entity.Store{Name: "Bodega Central", OperatingHours: 12}
	to := &entity.Store{Name: "Sucursal Sur", OperatingHours: 8}
	require.NoError(t, f.stores.Create(from))
	require.NoError(t, f.stores.Create(to))

	if qty > 0 {
		require.NoError(t, f.stock.Upsert(&entity.StockLocation{
			ProductID: p.ID, StoreID: from.ID, Quantity: qty,
		}))
	}
	return p.ID, from.ID, to.ID
}

func (f *transferFixture) quantityAt(t *testing.T, productID, storeID int64) int {
	t.Helper()
	loc, err := f.stock.Get(productID, storeID)
	require.NoError(t, err)
	return loc.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// TransferStock
// ──────────────────────────────────────────────────────────────────────────────

// Transferencia normal: descuenta origen, suma destino y registra el movimiento.
func TestTransferStock_MueveYRegistraMovimiento(t *testing.T) {
	f := newTransferFixture()
	productID, fromID, toID := f.seed(t, 10)

	out, err := f.uc.TransferStock(context.Background(), dto.TransferStockRequest{
		ProductID: productID, FromStoreID: fromID, ToStoreID: toID, Quantity: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, toID, out.StoreID)
	assert.Equal(t, 4, out.Quantity, "el destino queda con lo transferido")
	assert.Equal(t, 6, f.quantityAt(t, productID, fromID))
	assert.Equal(t, 4, f.quantityAt(t, productID, toID))

	movs, err := f.movements.ListByProduct(productID)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, fromID, movs[0].FromStoreID)
	assert.Equal(t, toID, movs[0].ToStoreID)
	assert.Equal(t, 4, movs[0].Quantity)
	_, err = uuid.Parse(movs[0].TransactionID)
	assert.NoError(t, err, "el movimiento lleva un UUID de transacción")
}

// Transferir exactamente todo el stock del origen lo deja en cero.
func TestTransferStock_CantidadExacta(t *testing.T) {
	f := newTransferFixture()
	productID, fromID, toID := f.seed(t, 7)

	out, err := f.uc.TransferStock(context.Background(), dto.TransferStockRequest{
		ProductID: productID, FromStoreID: fromID, ToStoreID: toID, Quantity: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, out.Quantity)
	assert.Equal(t, 0, f.quantityAt(t, productID, fromID))
}

// El destino sin fila previa termina con una única fila con la cantidad transferida.
func TestTransferStock_CreaFilaDestinoSiNoExiste(t *testing.T) {
	f := newTransferFixture()
	productID, fromID, toID := f.seed(t, 5)

	_, err := f.uc.TransferStock(context.Background(), dto.TransferStockRequest{
		ProductID: productID, FromStoreID: fromID, ToStoreID: toID, Quantity: 2,
	})
	require.NoError(t, err)

	locs, err := f.stock.ListByProduct(productID)
	require.NoError(t, err)
	assert.Len(t, locs, 2, "exactamente una fila por (producto, tienda)")
}

// Stock insuficiente → ErrInsufficientStock y ninguna fila cambia.
func TestTransferStock_StockInsuficienteNoCambiaNada(t *testing.T) {
	f := newTransferFixture()
	productID, fromID, toID := f.seed(t, 3)

	_, err := f.uc.TransferStock(context.Background(), dto.TransferStockRequest{
		ProductID: productID, FromStoreID: fromID, ToStoreID: toID, Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, f.quantityAt(t, productID, fromID), "el origen no debe cambiar")
	assert.Equal(t, 0, f.quantityAt(t, productID, toID), "el destino no debe cambiar")

	movs, err := f.movements.ListByProduct(productID)
	require.NoError(t, err)
	assert.Empty(t, movs, "no debe registrarse movimiento")
}

// Origen sin fila de stock equivale a stock cero → ErrInsufficientStock.
func TestTransferStock_OrigenSinFilaDeStock(t *testing.T) {
	f := newTransferFixture()
	productID, fromID, toID := f.seed(t, 0)

	_, err := f.uc.TransferStock(context.Background(), dto.TransferStockRequest{
		ProductID: productID, FromStoreID: fromID, ToStoreID: toID, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Cantidad no positiva u origen == destino → ErrInvalidInput.
func TestTransferStock_EntradaInvalida(t *testing.T) {
	f := newTransferFixture()
	productID, fromID, toID := f.seed(t, 10)

	_, err := f.uc.TransferStock(context.Background(), dto.TransferStockRequest{
		ProductID: productID, FromStoreID: fromID, ToStoreID: toID, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.TransferStock(context.Background(), dto.TransferStockRequest{
		ProductID: productID, FromStoreID: fromID, ToStoreID: fromID, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "origen y destino iguales no es transferencia")
}

// Producto o tienda inexistentes → ErrNotFound.
func TestTransferStock_ReferenciasInexistentes(t *testing.T) {
	f := newTransferFixture()
	productID, fromID, toID := f.seed(t, 10)

	_, err := f.uc.TransferStock(context.Background(), dto.TransferStockRequest{
		ProductID: 999, FromStoreID: fromID, ToStoreID: toID, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.TransferStock(context.Background(), dto.TransferStockRequest{
		ProductID: productID, FromStoreID: 999, ToStoreID: toID, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

// Ajuste positivo crea la fila si no existe; negativo descuenta.
func TestAdjustStock_IncrementaYDecrementa(t *testing.T) {
	f := newTransferFixture()
	productID, storeID, _ := f.seed(t, 0)

	out, err := f.uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: productID, StoreID: storeID, Quantity: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, out.Quantity)

	out, err = f.uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: productID, StoreID: storeID, Quantity: -3,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, out.Quantity)
}

// Un ajuste que dejaría stock negativo se rechaza sin cambios.
func TestAdjustStock_NoPermiteStockNegativo(t *testing.T) {
	f := newTransferFixture()
	productID, storeID, _ := f.seed(t, 2)

	_, err := f.uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: productID, StoreID: storeID, Quantity: -5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, f.quantityAt(t, productID, storeID))
}

// Ajuste de cero unidades no tiene sentido → ErrInvalidInput.
func TestAdjustStock_CantidadCeroInvalida(t *testing.T) {
	f := newTransferFixture()
	productID, storeID, _ := f.seed(t, 2)

	_, err := f.uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: productID, StoreID: storeID, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propagación de fallas de infraestructura
// ──────────────────────────────────────────────────────────────────────────────

var errStoreDown = errors.New("lectura de tienda falló")

// failingStoreRepo simula una falla de infraestructura en las lecturas de tienda.
type failingStoreRepo struct {
	repository.StoreRepository
}

func (failingStoreRepo) GetByID(int64) (*entity.Store, error) { return nil, errStoreDown }

// Una falla del repositorio debe llegar tal cual al llamador, nunca como ErrNotFound.
func TestTransferStock_FallaDeRepositorioSePropaga(t *testing.T) {
	f := newTransferFixture()
	productID, fromID, toID := f.seed(t, 10)
	runner := memory.NewTxRunner(f.stock, f.movements)
	uc := inventory.NewTransferStockUseCase(runner, f.products, failingStoreRepo{})

	_, err := uc.TransferStock(context.Background(), dto.TransferStockRequest{
		ProductID: productID, FromStoreID: fromID, ToStoreID: toID, Quantity: 4,
	})
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 10, f.quantityAt(t, productID, fromID), "nada cambia ante una falla de lectura")
}

func TestAdjustStock_FallaDeRepositorioSePropaga(t *testing.T) {
	f := newTransferFixture()
	productID, storeID, _ := f.seed(t, 2)
	runner := memory.NewTxRunner(f.stock, f.movements)
	uc := inventory.NewTransferStockUseCase(runner, f.products, failingStoreRepo{})

	_, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: productID, StoreID: storeID, Quantity: 3,
	})
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 2, f.quantityAt(t, productID, storeID))
}
