package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/giftcert-api/internal/application/dto"
	"github.com/jhoicas/giftcert-api/internal/domain"
	"github.com/jhoicas/giftcert-api/internal/domain/entity"
	"github.com/jhoicas/giftcert-api/internal/domain/repository"
	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

const (
	defaultPopularTags = 10
	maxPopularTags     = 100
)

// UserUseCase casos de uso de usuarios.
type UserUseCase struct {
	repo        repository.UserRepository
	search      repository.Searcher[*entity.User]
	orderSearch repository.Searcher[*entity.Order]
	engine      *SearchEngine
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(
	repo repository.UserRepository,
	userSearch repository.Searcher[*entity.User],
	orderSearch repository.Searcher[*entity.Order],
	engine *SearchEngine,
) *UserUseCase {
	return &UserUseCase{repo: repo, search: userSearch, orderSearch: orderSearch, engine: engine}
}

// Search busca usuarios.
func (uc *UserUseCase) Search(ctx context.Context, raw search.RawParams) (*dto.PageDataResponse[dto.UserResponse], error) {
	resp, err := runSearch(ctx, uc.engine, uc.search, raw, entity.UserType, entity.UserDefaults, nil)
	if err != nil {
		return nil, err
	}
	return dto.NewPageData(resp, toUserResponse), nil
}

// SearchOrders busca entre las órdenes de un usuario existente.
func (uc *UserUseCase) SearchOrders(ctx context.Context, id string, raw search.RawParams) (*dto.PageDataResponse[dto.OrderResponse], error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	scope := search.Eq{Column: "user_id", Values: []string{id}}
	resp, err := runSearch(ctx, uc.engine, uc.orderSearch, raw, entity.OrderType, entity.OrderDefaults, scope)
	if err != nil {
		return nil, err
	}
	return dto.NewPageData(resp, toOrderResponse), nil
}

// PopularTags etiquetas más frecuentes en las órdenes del usuario. limit fuera de rango usa el valor por defecto.
func (uc *UserUseCase) PopularTags(ctx context.Context, id string, limit int) ([]dto.TagStatResponse, error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > maxPopularTags {
		limit = defaultPopularTags
	}
	stats, err := uc.repo.PopularTags(ctx, id, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TagStatResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, toTagStatResponse(s))
	}
	return out, nil
}

// GetByID obtiene un usuario.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toUserResponse(u)
	return &out, nil
}

// Create registra un usuario. Username repetido → ErrDuplicate.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: el username es obligatorio", domain.ErrInvalidInput)
	}
	u := &entity.User{ID: uuid.New().String(), Username: username}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	out := toUserResponse(u)
	return &out, nil
}

func (uc *UserUseCase) get(ctx context.Context, id string) (*entity.User, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: usuario %s", domain.ErrNotFound, id)
	}
	return u, nil
}
