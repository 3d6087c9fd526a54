package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/giftcert-api/internal/application/dto"
	"github.com/jhoicas/giftcert-api/internal/domain"
	"github.com/jhoicas/giftcert-api/internal/domain/entity"
	"github.com/jhoicas/giftcert-api/internal/domain/repository"
	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// GiftCertificateUseCase casos de uso de certificados y sus búsquedas.
type GiftCertificateUseCase struct {
	repo      repository.GiftCertificateRepository
	search    repository.Searcher[*entity.GiftCertificate]
	tagSearch repository.Searcher[*entity.Tag]
	tx        TxRunner
	engine    *SearchEngine
}

// NewGiftCertificateUseCase construye el caso de uso.
func NewGiftCertificateUseCase(
	repo repository.GiftCertificateRepository,
	certSearch repository.Searcher[*entity.GiftCertificate],
	tagSearch repository.Searcher[*entity.Tag],
	tx TxRunner,
	engine *SearchEngine,
) *GiftCertificateUseCase {
	return &GiftCertificateUseCase{repo: repo, search: certSearch, tagSearch: tagSearch, tx: tx, engine: engine}
}

// Alcances fijos de búsqueda sobre la relación con etiquetas.
var (
	scopeTagged   search.Expr = search.Join{Path: entity.PathTags, Expr: search.Null{Column: "id", Negate: true}}
	scopeUntagged search.Expr = search.Join{Path: entity.PathTags, Expr: search.Null{Column: "id"}}
)

// Search busca certificados con los parámetros de la URL.
func (uc *GiftCertificateUseCase) Search(ctx context.Context, raw search.RawParams) (*dto.PageDataResponse[dto.GiftCertificateResponse], error) {
	return uc.searchScoped(ctx, raw, nil)
}

// SearchTagged busca solo entre certificados con al menos una etiqueta.
func (uc *GiftCertificateUseCase) SearchTagged(ctx context.Context, raw search.RawParams) (*dto.PageDataResponse[dto.GiftCertificateResponse], error) {
	return uc.searchScoped(ctx, raw, scopeTagged)
}

// SearchUntagged busca solo entre certificados sin etiquetas.
func (uc *GiftCertificateUseCase) SearchUntagged(ctx context.Context, raw search.RawParams) (*dto.PageDataResponse[dto.GiftCertificateResponse], error) {
	return uc.searchScoped(ctx, raw, scopeUntagged)
}

func (uc *GiftCertificateUseCase) searchScoped(ctx context.Context, raw search.RawParams, scope search.Expr) (*dto.PageDataResponse[dto.GiftCertificateResponse], error) {
	resp, err := runSearch(ctx, uc.engine, uc.search, raw, entity.GiftCertificateType, entity.GiftCertificateDefaults, scope)
	if err != nil {
		return nil, err
	}
	return dto.NewPageData(resp, toGiftCertificateResponse), nil
}

// SearchTags busca entre las etiquetas de un certificado existente.
func (uc *GiftCertificateUseCase) SearchTags(ctx context.Context, id string, raw search.RawParams) (*dto.PageDataResponse[dto.TagResponse], error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	scope := search.Join{Path: entity.PathCertificates, Expr: search.Eq{Column: "id", Values: []string{id}}}
	resp, err := runSearch(ctx, uc.engine, uc.tagSearch, raw, entity.TagType, entity.TagDefaults, scope)
	if err != nil {
		return nil, err
	}
	return dto.NewPageData(resp, toTagResponse), nil
}

// GetByID obtiene un certificado con sus etiquetas.
func (uc *GiftCertificateUseCase) GetByID(ctx context.Context, id string) (*dto.GiftCertificateResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toGiftCertificateResponse(c)
	return &out, nil
}

// Create crea el certificado y le asocia las etiquetas (creando las que falten) en una transacción.
func (uc *GiftCertificateUseCase) Create(ctx context.Context, in dto.CreateGiftCertificateRequest) (*dto.GiftCertificateResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Duration <= 0 || in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: nombre, precio y duración son obligatorios", domain.ErrInvalidInput)
	}
	now := time.Now().UTC()
	cert := &entity.GiftCertificate{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Duration:       in.Duration,
		CreateDate:     now,
		LastUpdateDate: now,
	}

	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		if err := repos.Certificates.Create(ctx, cert); err != nil {
			return err
		}
		tags, err := ensureTags(ctx, repos.Tags, in.Tags)
		if err != nil {
			return err
		}
		cert.Tags = tags
		return repos.Certificates.AttachTags(ctx, cert.ID, tagIDs(tags))
	})
	if err != nil {
		return nil, err
	}
	out := toGiftCertificateResponse(cert)
	return &out, nil
}

// Update aplica una actualización parcial y agrega las etiquetas indicadas.
func (uc *GiftCertificateUseCase) Update(ctx context.Context, id string, in dto.UpdateGiftCertificateRequest) (*dto.GiftCertificateResponse, error) {
	var updated *entity.GiftCertificate
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		cert, err := repos.Certificates.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if cert == nil {
			return domain.ErrNotFound
		}
		if err := applyUpdate(cert, in); err != nil {
			return err
		}
		cert.LastUpdateDate = time.Now().UTC()
		if err := repos.Certificates.Update(ctx, cert); err != nil {
			return err
		}
		tags, err := ensureTags(ctx, repos.Tags, in.Tags)
		if err != nil {
			return err
		}
		if err := repos.Certificates.AttachTags(ctx, cert.ID, tagIDs(tags)); err != nil {
			return err
		}
		updated, err = repos.Certificates.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := toGiftCertificateResponse(updated)
	return &out, nil
}

// Delete elimina un certificado.
func (uc *GiftCertificateUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *GiftCertificateUseCase) get(ctx context.Context, id string) (*entity.GiftCertificate, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: certificado %s", domain.ErrNotFound, id)
	}
	return c, nil
}

func applyUpdate(c *entity.GiftCertificate, in dto.UpdateGiftCertificateRequest) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		c.Name = name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
		}
		c.Price = *in.Price
	}
	if in.Duration != nil {
		if *in.Duration <= 0 {
			return fmt.Errorf("%w: la duración debe ser positiva", domain.ErrInvalidInput)
		}
		c.Duration = *in.Duration
	}
	return nil
}

// ensureTags devuelve las etiquetas con esos nombres, creando las que no existan. Ignora vacíos y repetidos.
func ensureTags(ctx context.Context, repo repository.TagRepository, names []string) ([]entity.Tag, error) {
	tags := []entity.Tag{}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true

		tag, err := repo.GetByName(ctx, n)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			tag = &entity.Tag{ID: uuid.New().String(), Name: n}
			if err := repo.Create(ctx, tag); err != nil {
				return nil, err
			}
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

func tagIDs(tags []entity.Tag) []string {
	ids := make([]string, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids
}
