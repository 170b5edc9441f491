package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/application/inventory"
)

// InventoryHandler maneja las operaciones de stock: transferencias y ajustes.
type InventoryHandler struct {
	uc *inventory.TransferStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.TransferStockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// TransferStock godoc
// @Summary      Transferir stock de un producto entre tiendas
// @Description  Mueve quantity unidades de from_store a to_store de forma atómica
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferStockRequest  true  "Transferencia"
// @Success      200   {object}  dto.StockLocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente en origen"
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) TransferStock(c *fiber.Ctx) error {
	var in dto.TransferStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.TransferStock(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AdjustStock godoc
// @Summary      Ajustar stock de un producto en una tienda
// @Description  Quantity positiva incrementa, negativa decrementa; nunca baja de cero
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Ajuste"
// @Success      200   {object}  dto.StockLocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "El ajuste dejaría stock negativo"
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdjustStock(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
