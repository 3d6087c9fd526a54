package http

import (
	"github.com/gofiber/fiber/v2"
)

// OrderHandler maneja las peticiones HTTP para órdenes.
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler construye el handler.
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Search godoc
// @Summary      Buscar órdenes
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.PageDataResponse[dto.OrderResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) Search(c *fiber.Ctx) error {
	out, err := h.svc.Search(c.UserContext(), rawParams(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(withLinks(c, out))
}

// GetByID godoc
// @Summary      Obtener orden por ID
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SearchCertificates godoc
// @Summary      Buscar certificados de una orden
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PageDataResponse[dto.GiftCertificateResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/certificates [get]
func (h *OrderHandler) SearchCertificates(c *fiber.Ctx) error {
	out, err := h.svc.SearchCertificates(c.UserContext(), c.Params("id"), rawParams(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(withLinks(c, out))
}

// Delete godoc
// @Summary      Eliminar orden
// @Tags         orders
// @Security     Bearer
// @Param        id   path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
