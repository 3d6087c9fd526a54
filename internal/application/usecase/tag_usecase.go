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

// TagUseCase casos de uso de etiquetas.
type TagUseCase struct {
	repo       repository.TagRepository
	search     repository.Searcher[*entity.Tag]
	certSearch repository.Searcher[*entity.GiftCertificate]
	engine     *SearchEngine
}

// NewTagUseCase construye el caso de uso.
func NewTagUseCase(
	repo repository.TagRepository,
	tagSearch repository.Searcher[*entity.Tag],
	certSearch repository.Searcher[*entity.GiftCertificate],
	engine *SearchEngine,
) *TagUseCase {
	return &TagUseCase{repo: repo, search: tagSearch, certSearch: certSearch, engine: engine}
}

// Search busca etiquetas.
func (uc *TagUseCase) Search(ctx context.Context, raw search.RawParams) (*dto.PageDataResponse[dto.TagResponse], error) {
	resp, err := runSearch(ctx, uc.engine, uc.search, raw, entity.TagType, entity.TagDefaults, nil)
	if err != nil {
		return nil, err
	}
	return dto.NewPageData(resp, toTagResponse), nil
}

// SearchCertificates busca entre los certificados que tienen la etiqueta.
func (uc *TagUseCase) SearchCertificates(ctx context.Context, id string, raw search.RawParams) (*dto.PageDataResponse[dto.GiftCertificateResponse], error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	scope := search.Join{Path: entity.PathTags, Expr: search.Eq{Column: "id", Values: []string{id}}}
	resp, err := runSearch(ctx, uc.engine, uc.certSearch, raw, entity.GiftCertificateType, entity.GiftCertificateDefaults, scope)
	if err != nil {
		return nil, err
	}
	return dto.NewPageData(resp, toGiftCertificateResponse), nil
}

// GetByID obtiene una etiqueta.
func (uc *TagUseCase) GetByID(ctx context.Context, id string) (*dto.TagResponse, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toTagResponse(t)
	return &out, nil
}

// Create crea una etiqueta. Nombre repetido → ErrDuplicate.
func (uc *TagUseCase) Create(ctx context.Context, in dto.CreateTagRequest) (*dto.TagResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	tag := &entity.Tag{ID: uuid.New().String(), Name: name}
	if err := uc.repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	out := toTagResponse(tag)
	return &out, nil
}

// Delete elimina la etiqueta y la desasocia de sus certificados.
func (uc *TagUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *TagUseCase) get(ctx context.Context, id string) (*entity.Tag, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: etiqueta %s", domain.ErrNotFound, id)
	}
	return t, nil
}
