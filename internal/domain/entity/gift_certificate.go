package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GiftCertificate certificado de regalo. Duration en días.
type GiftCertificate struct {
	ID             string
	Name           string
	Description    string
	Price          decimal.Decimal
	Duration       int
	CreateDate     time.Time
	LastUpdateDate time.Time
	Tags           []Tag // solo se carga en respuestas sin fold
}
