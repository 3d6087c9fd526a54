package repository

import (
	"context"

	"github.com/jhoicas/giftcert-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// PopularTags etiquetas de las órdenes del usuario, de la más frecuente a la menos.
	PopularTags(ctx context.Context, userID string, limit int) ([]entity.TagStat, error)
}
