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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier); Create requiere tx.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la orden y sus líneas. Usuario o certificado inexistente → ErrNotFound.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `INSERT INTO orders (id, user_id, cost, purchase_date) VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, query, o.ID, o.UserID, o.Cost, o.PurchaseDate); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: usuario %s", domain.ErrNotFound, o.UserID)
		}
		return fmt.Errorf("insert order: %w", err)
	}

	ids := make([]string, 0, len(o.Certificates))
	for _, c := range o.Certificates {
		ids = append(ids, c.ID)
	}
	lines := `
		INSERT INTO order_gift_certificate (order_id, gift_certificate_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING`
	if _, err := r.q.Exec(ctx, lines, o.ID, ids); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: certificado de la orden", domain.ErrNotFound)
		}
		return fmt.Errorf("insert order lines: %w", err)
	}
	return nil
}

// GetByID obtiene una orden con sus certificados.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT id, user_id, cost, purchase_date FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	query := `
		SELECT gc.id, gc.name, gc.description, gc.price, gc.duration, gc.create_date, gc.last_update_date
		FROM gift_certificate gc
		JOIN order_gift_certificate ogc ON ogc.gift_certificate_id = gc.id
		WHERE ogc.order_id = $1
		ORDER BY gc.name`
	rows, err := r.q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get order certificates: %w", err)
	}
	defer rows.Close()

	o.Certificates = []entity.GiftCertificate{}
	for rows.Next() {
		c, err := scanGiftCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order certificate: %w", err)
		}
		o.Certificates = append(o.Certificates, *c)
	}
	return o, rows.Err()
}

// Delete elimina la orden y sus líneas (ON DELETE CASCADE).
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
