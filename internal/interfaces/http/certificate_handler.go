package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/giftcert-api/internal/application/dto"
)

// CertificateHandler maneja las peticiones HTTP para certificados de regalo.
type CertificateHandler struct {
	svc CertificateService
}

// NewCertificateHandler construye el handler.
func NewCertificateHandler(svc CertificateService) *CertificateHandler {
	return &CertificateHandler{svc: svc}
}

// Search godoc
// @Summary      Buscar certificados
// @Description  Filtros f:<alias> (exacto) y p:<alias> (parcial), orden s:<alias>=asc|desc, page, size, fold=on|off
// @Tags         certificates
// @Produce      json
// @Param        page  query  int     false  "Página (desde 1)"
// @Param        size  query  int     false  "Tamaño de página"
// @Param        fold  query  string  false  "on omite las etiquetas"
// @Success      200   {object}  dto.PageDataResponse[dto.GiftCertificateResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/certificates [get]
func (h *CertificateHandler) Search(c *fiber.Ctx) error {
	out, err := h.svc.Search(c.UserContext(), rawParams(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(withLinks(c, out))
}

// SearchTagged godoc
// @Summary      Buscar certificados con al menos una etiqueta
// @Tags         certificates
// @Produce      json
// @Success      200  {object}  dto.PageDataResponse[dto.GiftCertificateResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/certificates/tagged [get]
func (h *CertificateHandler) SearchTagged(c *fiber.Ctx) error {
	out, err := h.svc.SearchTagged(c.UserContext(), rawParams(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(withLinks(c, out))
}

// SearchUntagged godoc
// @Summary      Buscar certificados sin etiquetas
// @Tags         certificates
// @Produce      json
// @Success      200  {object}  dto.PageDataResponse[dto.GiftCertificateResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/certificates/untagged [get]
func (h *CertificateHandler) SearchUntagged(c *fiber.Ctx) error {
	out, err := h.svc.SearchUntagged(c.UserContext(), rawParams(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(withLinks(c, out))
}

// SearchTags godoc
// @Summary      Buscar etiquetas de un certificado
// @Tags         certificates
// @Produce      json
// @Param        id   path  string  true  "ID del certificado"
// @Success      200  {object}  dto.PageDataResponse[dto.TagResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/certificates/{id}/tags [get]
func (h *CertificateHandler) SearchTags(c *fiber.Ctx) error {
	out, err := h.svc.SearchTags(c.UserContext(), c.Params("id"), rawParams(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(withLinks(c, out))
}

// GetByID godoc
// @Summary      Obtener certificado por ID
// @Tags         certificates
// @Produce      json
// @Param        id   path  string  true  "ID del certificado"
// @Success      200  {object}  dto.GiftCertificateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/certificates/{id} [get]
func (h *CertificateHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear certificado
// @Tags         certificates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGiftCertificateRequest  true  "Datos del certificado"
// @Success      201   {object}  dto.GiftCertificateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/certificates [post]
func (h *CertificateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGiftCertificateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar certificado (parcial)
// @Tags         certificates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID del certificado"
// @Param        body  body  dto.UpdateGiftCertificateRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.GiftCertificateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/certificates/{id} [put]
func (h *CertificateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGiftCertificateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar certificado
// @Tags         certificates
// @Security     Bearer
// @Param        id   path  string  true  "ID del certificado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/certificates/{id} [delete]
func (h *CertificateHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
