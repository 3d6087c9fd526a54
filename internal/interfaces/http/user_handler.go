package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/giftcert-api/internal/application/dto"
)

// UserHandler maneja las peticiones HTTP para usuarios y sus órdenes.
type UserHandler struct {
	users  UserService
	orders OrderService
}

// NewUserHandler construye el handler.
func NewUserHandler(users UserService, orders OrderService) *UserHandler {
	return &UserHandler{users: users, orders: orders}
}

// Search godoc
// @Summary      Buscar usuarios
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.PageDataResponse[dto.UserResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) Search(c *fiber.Ctx) error {
	out, err := h.users.Search(c.UserContext(), rawParams(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(withLinks(c, out))
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.users.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.users.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SearchOrders godoc
// @Summary      Buscar órdenes de un usuario
// @Tags         users
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.PageDataResponse[dto.OrderResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/orders [get]
func (h *UserHandler) SearchOrders(c *fiber.Ctx) error {
	out, err := h.users.SearchOrders(c.UserContext(), c.Params("id"), rawParams(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(withLinks(c, out))
}

// MakeOrder godoc
// @Summary      Comprar certificados
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del usuario"
// @Param        body  body  dto.CreateOrderRequest  true  "Nombres de los certificados"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/orders [post]
func (h *UserHandler) MakeOrder(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.orders.Create(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PopularTags godoc
// @Summary      Etiquetas más frecuentes en las órdenes de un usuario
// @Tags         users
// @Produce      json
// @Param        id     path   string  true   "ID del usuario"
// @Param        limit  query  int     false  "Máximo de etiquetas (por defecto 10)"
// @Success      200    {array}   dto.TagStatResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/users/{id}/tags/popular [get]
func (h *UserHandler) PopularTags(c *fiber.Ctx) error {
	out, err := h.users.PopularTags(c.UserContext(), c.Params("id"), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
