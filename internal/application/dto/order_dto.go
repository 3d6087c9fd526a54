package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para comprar certificados (por nombre).
type CreateOrderRequest struct {
	Certificates []string `json:"certificates"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID           string                    `json:"id"`
	UserID       string                    `json:"user_id"`
	Cost         decimal.Decimal           `json:"cost"`
	PurchaseDate time.Time                 `json:"purchase_date"`
	Certificates []GiftCertificateResponse `json:"certificates,omitempty"`
}
