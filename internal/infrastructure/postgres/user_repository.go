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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario. Username repetido → ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	_, err := r.q.Exec(ctx, `INSERT INTO users (id, username) VALUES ($1, $2)`, u.ID, u.Username)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT id, username FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// PopularTags cuenta en cuántas órdenes del usuario aparece cada etiqueta, junto con el costo
// de la orden más cara que la contiene. Empates por nombre.
func (r *UserRepo) PopularTags(ctx context.Context, userID string, limit int) ([]entity.TagStat, error) {
	query := `
		SELECT t.id, t.name, COUNT(DISTINCT o.id) AS order_count, MAX(o.cost) AS max_cost
		FROM orders o
		JOIN order_gift_certificate ogc ON ogc.order_id = o.id
		JOIN gift_certificate_tag gct ON gct.gift_certificate_id = ogc.gift_certificate_id
		JOIN tag t ON t.id = gct.tag_id
		WHERE o.user_id = $1
		GROUP BY t.id, t.name
		ORDER BY order_count DESC, max_cost DESC, t.name ASC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("popular tags: %w", err)
	}
	defer rows.Close()

	stats := []entity.TagStat{}
	for rows.Next() {
		var s entity.TagStat
		if err := rows.Scan(&s.Tag.ID, &s.Tag.Name, &s.OrderCount, &s.MaxCost); err != nil {
			return nil, fmt.Errorf("scan popular tag: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
