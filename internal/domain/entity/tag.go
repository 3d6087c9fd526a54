package entity

import "github.com/shopspring/decimal"

// Tag etiqueta asociable a certificados.
type Tag struct {
	ID   string
	Name string
}

// TagStat popularidad de una etiqueta dentro de las órdenes de un usuario.
type TagStat struct {
	Tag        Tag
	OrderCount int
	MaxCost    decimal.Decimal // costo de la orden más cara que la contiene
}
