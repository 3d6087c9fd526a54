package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order compra de uno o más certificados por parte de un usuario.
// Cost es la suma de los precios de los certificados al momento de la compra.
type Order struct {
	ID           string
	UserID       string
	Cost         decimal.Decimal
	PurchaseDate time.Time
	Certificates []GiftCertificate // solo se carga en respuestas sin fold
}
