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

var _ repository.GiftCertificateRepository = (*GiftCertificateRepo)(nil)

// GiftCertificateRepo implementación del puerto GiftCertificateRepository sobre PostgreSQL (usable con pool o tx).
type GiftCertificateRepo struct {
	q Querier
}

// NewGiftCertificateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGiftCertificateRepository(q Querier) *GiftCertificateRepo {
	return &GiftCertificateRepo{q: q}
}

const selectGiftCertificate = `
	SELECT id, name, description, price, duration, create_date, last_update_date
	FROM gift_certificate`

// Create persiste un nuevo certificado (sin etiquetas; ver AttachTags).
func (r *GiftCertificateRepo) Create(ctx context.Context, c *entity.GiftCertificate) error {
	query := `
		INSERT INTO gift_certificate (id, name, description, price, duration, create_date, last_update_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Description, c.Price, c.Duration, c.CreateDate, c.LastUpdateDate)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert gift certificate: %w", err)
	}
	return nil
}

// GetByID obtiene un certificado con sus etiquetas.
func (r *GiftCertificateRepo) GetByID(ctx context.Context, id string) (*entity.GiftCertificate, error) {
	c, err := scanGiftCertificate(r.q.QueryRow(ctx, selectGiftCertificate+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gift certificate: %w", err)
	}
	tags, err := r.tagsOf(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Tags = tags
	return c, nil
}

// GetByNames obtiene los certificados con esos nombres (los que existan).
func (r *GiftCertificateRepo) GetByNames(ctx context.Context, names []string) ([]*entity.GiftCertificate, error) {
	rows, err := r.q.Query(ctx, selectGiftCertificate+` WHERE name = ANY($1) ORDER BY name`, names)
	if err != nil {
		return nil, fmt.Errorf("get gift certificates by name: %w", err)
	}
	defer rows.Close()

	var list []*entity.GiftCertificate
	for rows.Next() {
		c, err := scanGiftCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gift certificate: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los campos propios y la fecha de última modificación.
func (r *GiftCertificateRepo) Update(ctx context.Context, c *entity.GiftCertificate) error {
	query := `
		UPDATE gift_certificate
		SET name = $2, description = $3, price = $4, duration = $5, last_update_date = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Description, c.Price, c.Duration, c.LastUpdateDate)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update gift certificate: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el certificado. Falla con ErrConflict si alguna orden lo referencia.
func (r *GiftCertificateRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM gift_certificate WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el certificado pertenece a una orden", domain.ErrConflict)
		}
		return fmt.Errorf("delete gift certificate: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AttachTags asocia etiquetas existentes al certificado.
func (r *GiftCertificateRepo) AttachTags(ctx context.Context, certificateID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO gift_certificate_tag (gift_certificate_id, tag_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING`
	if _, err := r.q.Exec(ctx, query, certificateID, tagIDs); err != nil {
		return fmt.Errorf("attach tags: %w", err)
	}
	return nil
}

func (r *GiftCertificateRepo) tagsOf(ctx context.Context, certificateID string) ([]entity.Tag, error) {
	query := `
		SELECT t.id, t.name
		FROM tag t
		JOIN gift_certificate_tag gct ON gct.tag_id = t.id
		WHERE gct.gift_certificate_id = $1
		ORDER BY t.name`
	rows, err := r.q.Query(ctx, query, certificateID)
	if err != nil {
		return nil, fmt.Errorf("get certificate tags: %w", err)
	}
	defer rows.Close()

	tags := []entity.Tag{}
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
