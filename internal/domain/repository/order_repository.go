package repository

import (
	"context"

	"github.com/jhoicas/giftcert-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	// Create persiste la orden y la asocia a order.Certificates (por ID).
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Delete(ctx context.Context, id string) error
}
