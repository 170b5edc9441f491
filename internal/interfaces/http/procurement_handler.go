package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/application/procurement"
)

// ProcurementHandler maneja el disparador de reorden.
type ProcurementHandler struct {
	uc *procurement.ReorderUseCase
}

// NewProcurementHandler construye el handler.
func NewProcurementHandler(uc *procurement.ReorderUseCase) *ProcurementHandler {
	return &ProcurementHandler{uc: uc}
}

// TriggerPurchaseOrder godoc
// @Summary      Disparar orden de compra por bajo stock
// @Description  Si el stock total del producto está bajo su umbral de reorden, crea
// @Description  una orden "Pending" al proveedor por la cantidad faltante. Con stock
// @Description  suficiente responde created=false sin persistir nada.
// @Tags         procurement
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TriggerPurchaseOrderRequest  true  "Producto a evaluar"
// @Success      200   {object}  dto.ReorderResultDTO  "Evaluación aplicada; created indica si hubo orden"
// @Failure      404   {object}  dto.ErrorResponse     "Producto o proveedor inexistente"
// @Router       /trigger-purchase-order [post]
func (h *ProcurementHandler) TriggerPurchaseOrder(c *fiber.Ctx) error {
	var in dto.TriggerPurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId es requerido"})
	}
	out, err := h.uc.TriggerPurchaseOrder(c.UserContext(), in.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	// Orden creada o no-op informativo: ambos responden 200; created lo distingue.
	return c.JSON(out)
}
