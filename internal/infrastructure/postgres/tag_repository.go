package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/giftcert-api/internal/domain"
	"github.com/jhoicas/giftcert-api/internal/domain/entity"
	"github.com/jhoicas/giftcert-api/internal/domain/repository"
)

var _ repository.TagRepository = (*TagRepo)(nil)

// TagRepo implementación del puerto TagRepository sobre PostgreSQL.
type TagRepo struct {
	q Querier
}

// NewTagRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTagRepository(q Querier) *TagRepo {
	return &TagRepo{q: q}
}

// Create persiste una etiqueta. Nombre repetido → ErrDuplicate.
func (r *TagRepo) Create(ctx context.Context, t *entity.Tag) error {
	_, err := r.q.Exec(ctx, `INSERT INTO tag (id, name) VALUES ($1, $2)`, t.ID, t.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// GetByID obtiene una etiqueta por ID.
func (r *TagRepo) GetByID(ctx context.Context, id string) (*entity.Tag, error) {
	return r.getOne(ctx, `SELECT id, name FROM tag WHERE id = $1`, id)
}

// GetByName obtiene una etiqueta por nombre exacto.
func (r *TagRepo) GetByName(ctx context.Context, name string) (*entity.Tag, error) {
	return r.getOne(ctx, `SELECT id, name FROM tag WHERE name = $1`, name)
}

func (r *TagRepo) getOne(ctx context.Context, query string, arg string) (*entity.Tag, error) {
	t, err := scanTag(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return t, nil
}

// Delete elimina la etiqueta y sus asociaciones (ON DELETE CASCADE).
func (r *TagRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM tag WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
