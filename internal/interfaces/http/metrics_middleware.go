package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestObserver recibe cada petición respondida (lo implementa observability.Metrics).
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// MetricsMiddleware mide latencia y código por ruta registrada (no por path crudo, para acotar la cardinalidad).
func MetricsMiddleware(obs RequestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		route := c.Route().Path
		if route == "" || route == "/" {
			route = "unmatched"
		}
		obs.ObserveRequest(c.Method(), route, status, time.Since(start))
		return err
	}
}
