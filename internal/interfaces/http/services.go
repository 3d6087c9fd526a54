package http

import (
	"context"

	"github.com/jhoicas/giftcert-api/internal/application/dto"
	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// Los handlers dependen de estas interfaces; las implementan los casos de uso de application/usecase.

// CertificateService operaciones sobre certificados de regalo.
type CertificateService interface {
	Search(ctx context.Context, raw search.RawParams) (*dto.PageDataResponse[dto.GiftCertificateResponse], error)
	SearchTagged(ctx context.Context, raw search.RawParams) (*dto.PageDataResponse[dto.GiftCertificateResponse], error)
	SearchUntagged(ctx context.Context, raw search.RawParams) (*dto.PageDataResponse[dto.GiftCertificateResponse], error)
	SearchTags(ctx context.Context, id string, raw search.RawParams) (*dto.PageDataResponse[dto.TagResponse], error)
	GetByID(ctx context.Context, id string) (*dto.GiftCertificateResponse, error)
	Create(ctx context.Context, in dto.CreateGiftCertificateRequest) (*dto.GiftCertificateResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateGiftCertificateRequest) (*dto.GiftCertificateResponse, error)
	Delete(ctx context.Context, id string) error
}

// TagService operaciones sobre etiquetas.
type TagService interface {
	Search(ctx context.Context, raw search.RawParams) (*dto.PageDataResponse[dto.TagResponse], error)
	SearchCertificates(ctx context.Context, id string, raw search.RawParams) (*dto.PageDataResponse[dto.GiftCertificateResponse], error)
	GetByID(ctx context.Context, id string) (*dto.TagResponse, error)
	Create(ctx context.Context, in dto.CreateTagRequest) (*dto.TagResponse, error)
	Delete(ctx context.Context, id string) error
}

// UserService operaciones sobre usuarios.
type UserService interface {
	Search(ctx context.Context, raw search.RawParams) (*dto.PageDataResponse[dto.UserResponse], error)
	SearchOrders(ctx context.Context, id string, raw search.RawParams) (*dto.PageDataResponse[dto.OrderResponse], error)
	PopularTags(ctx context.Context, id string, limit int) ([]dto.TagStatResponse, error)
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
	Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error)
}

// OrderService operaciones sobre órdenes.
type OrderService interface {
	Search(ctx context.Context, raw search.RawParams) (*dto.PageDataResponse[dto.OrderResponse], error)
	SearchCertificates(ctx context.Context, id string, raw search.RawParams) (*dto.PageDataResponse[dto.GiftCertificateResponse], error)
	GetByID(ctx context.Context, id string) (*dto.OrderResponse, error)
	Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id string) error
}
