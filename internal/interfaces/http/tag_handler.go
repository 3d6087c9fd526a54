package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/giftcert-api/internal/application/dto"
)

// TagHandler maneja las peticiones HTTP para etiquetas.
type TagHandler struct {
	svc TagService
}

// NewTagHandler construye el handler.
func NewTagHandler(svc TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// Search godoc
// @Summary      Buscar etiquetas
// @Tags         tags
// @Produce      json
// @Success      200  {object}  dto.PageDataResponse[dto.TagResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tags [get]
func (h *TagHandler) Search(c *fiber.Ctx) error {
	out, err := h.svc.Search(c.UserContext(), rawParams(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(withLinks(c, out))
}

// SearchCertificates godoc
// @Summary      Buscar certificados de una etiqueta
// @Tags         tags
// @Produce      json
// @Param        id   path  string  true  "ID de la etiqueta"
// @Success      200  {object}  dto.PageDataResponse[dto.GiftCertificateResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tags/{id}/certificates [get]
func (h *TagHandler) SearchCertificates(c *fiber.Ctx) error {
	out, err := h.svc.SearchCertificates(c.UserContext(), c.Params("id"), rawParams(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(withLinks(c, out))
}

// GetByID godoc
// @Summary      Obtener etiqueta por ID
// @Tags         tags
// @Produce      json
// @Param        id   path  string  true  "ID de la etiqueta"
// @Success      200  {object}  dto.TagResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [get]
func (h *TagHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear etiqueta
// @Tags         tags
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTagRequest  true  "Nombre de la etiqueta"
// @Success      201   {object}  dto.TagResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tags [post]
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTagRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar etiqueta
// @Tags         tags
// @Security     Bearer
// @Param        id   path  string  true  "ID de la etiqueta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [delete]
func (h *TagHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
