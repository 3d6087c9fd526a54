package repository

import (
	"context"

	"github.com/jhoicas/giftcert-api/internal/domain/entity"
)

// TagRepository define el puerto de persistencia para Tag (DIP).
type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	GetByID(ctx context.Context, id string) (*entity.Tag, error)
	GetByName(ctx context.Context, name string) (*entity.Tag, error)
	Delete(ctx context.Context, id string) error
}
