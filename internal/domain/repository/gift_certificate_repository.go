package repository

import (
	"context"

	"github.com/jhoicas/giftcert-api/internal/domain/entity"
)

// GiftCertificateRepository define el puerto de persistencia para GiftCertificate (DIP).
// Los Get devuelven (nil, nil) si no existe.
type GiftCertificateRepository interface {
	Create(ctx context.Context, cert *entity.GiftCertificate) error
	GetByID(ctx context.Context, id string) (*entity.GiftCertificate, error)
	GetByNames(ctx context.Context, names []string) ([]*entity.GiftCertificate, error)
	Update(ctx context.Context, cert *entity.GiftCertificate) error
	Delete(ctx context.Context, id string) error
	// AttachTags asocia etiquetas ya existentes; las asociaciones repetidas se ignoran.
	AttachTags(ctx context.Context, certificateID string, tagIDs []string) error
}
