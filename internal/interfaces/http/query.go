package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/giftcert-api/internal/application/dto"
	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// rawParams copia los query args en el orden en que llegaron; los valores ya vienen decodificados.
func rawParams(c *fiber.Ctx) search.RawParams {
	var raw search.RawParams
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		raw.Add(string(key), string(value))
	})
	return raw
}

// withLinks completa los enlaces con la ruta de la petición.
func withLinks[T any](c *fiber.Ctx, page *dto.PageDataResponse[T]) *dto.PageDataResponse[T] {
	page.Links = page.Links.WithBase(c.Path())
	return page
}
