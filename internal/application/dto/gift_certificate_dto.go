package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateGiftCertificateRequest entrada para crear un certificado. Las etiquetas se indican por nombre
// y se crean si no existen.
type CreateGiftCertificateRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
	Tags        []string        `json:"tags"`
}

// UpdateGiftCertificateRequest actualización parcial; los campos nulos no se tocan.
// Tags agrega etiquetas, no reemplaza las existentes.
type UpdateGiftCertificateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Duration    *int             `json:"duration"`
	Tags        []string         `json:"tags"`
}

// GiftCertificateResponse salida de un certificado.
type GiftCertificateResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Duration       int             `json:"duration"`
	CreateDate     time.Time       `json:"create_date"`
	LastUpdateDate time.Time       `json:"last_update_date"`
	Tags           []TagResponse   `json:"tags,omitempty"`
}
