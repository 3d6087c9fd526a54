package dto

import "github.com/shopspring/decimal"

// CreateTagRequest entrada para crear una etiqueta.
type CreateTagRequest struct {
	Name string `json:"name"`
}

// TagResponse salida de una etiqueta.
type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TagStatResponse etiqueta con su popularidad en las órdenes de un usuario.
type TagStatResponse struct {
	Tag        TagResponse     `json:"tag"`
	OrderCount int             `json:"order_count"`
	MaxCost    decimal.Decimal `json:"max_cost"`
}
