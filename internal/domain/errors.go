package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrInvalidParameter = errors.New("parámetro de consulta inválido")
)

// Variantes que envuelven a un error más general para que errors.Is funcione sobre ambos.
var (
	// ErrPageOutOfRange la página pedida supera el total de páginas de la búsqueda.
	ErrPageOutOfRange = fmt.Errorf("%w: página fuera de rango", ErrInvalidParameter)
	// ErrEmptyOrder una orden sin certificados.
	ErrEmptyOrder = fmt.Errorf("%w: la orden no contiene certificados", ErrInvalidInput)
)
