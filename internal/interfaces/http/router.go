package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Certificates CertificateService
	Tags         TagService
	Users        UserService
	Orders       OrderService
	JWTSecret    string
	JWTIssuer    string
	// Metrics expone /metrics cuando no es nil.
	Metrics http.Handler
	// WriteRoles roles con permiso de escritura; vacío admite cualquier token válido.
	WriteRoles []string
}

// Router registra las rutas de la API. Las consultas son públicas; las escrituras exigen Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")
	auth := []fiber.Handler{AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireRole(deps.WriteRoles...)}
	secured := func(h fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, auth...), h)
	}

	// Certificates
	certs := api.Group("/certificates")
	certHandler := NewCertificateHandler(deps.Certificates)
	certs.Get("/", certHandler.Search)
	certs.Get("/tagged", certHandler.SearchTagged)
	certs.Get("/untagged", certHandler.SearchUntagged)
	certs.Get("/:id", certHandler.GetByID)
	certs.Get("/:id/tags", certHandler.SearchTags)
	certs.Post("/", secured(certHandler.Create)...)
	certs.Put("/:id", secured(certHandler.Update)...)
	certs.Delete("/:id", secured(certHandler.Delete)...)

	// Tags
	tags := api.Group("/tags")
	tagHandler := NewTagHandler(deps.Tags)
	tags.Get("/", tagHandler.Search)
	tags.Get("/:id", tagHandler.GetByID)
	tags.Get("/:id/certificates", tagHandler.SearchCertificates)
	tags.Post("/", secured(tagHandler.Create)...)
	tags.Delete("/:id", secured(tagHandler.Delete)...)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.Users, deps.Orders)
	users.Get("/", userHandler.Search)
	users.Get("/:id", userHandler.GetByID)
	users.Get("/:id/orders", userHandler.SearchOrders)
	users.Get("/:id/tags/popular", userHandler.PopularTags)
	users.Post("/", secured(userHandler.Create)...)
	users.Post("/:id/orders", secured(userHandler.MakeOrder)...)

	// Orders
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.Orders)
	orders.Get("/", orderHandler.Search)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/certificates", orderHandler.SearchCertificates)
	orders.Delete("/:id", secured(orderHandler.Delete)...)
}
