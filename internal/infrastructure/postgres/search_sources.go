package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/giftcert-api/internal/domain/entity"
)

var giftCertificateSource = &searchSource{
	Table:   "gift_certificate",
	Alias:   "gc",
	Key:     "id",
	Columns: []string{"id", "name", "description", "price", "duration", "create_date", "last_update_date"},
	Paths: map[string]joinPath{
		entity.PathTags: {Alias: "t{n}", Clauses: []string{
			"gift_certificate_tag AS gct{n} ON gct{n}.gift_certificate_id = gc.id",
			"tag AS t{n} ON t{n}.id = gct{n}.tag_id",
		}},
		// Solo para alcances internos (certificados de una orden); el catálogo no lo expone.
		entity.PathOrders: {Alias: "o{n}", Clauses: []string{
			"order_gift_certificate AS ogc{n} ON ogc{n}.gift_certificate_id = gc.id",
			"orders AS o{n} ON o{n}.id = ogc{n}.order_id",
		}},
	},
}

var tagSource = &searchSource{
	Table:   "tag",
	Alias:   "t",
	Key:     "id",
	Columns: []string{"id", "name"},
	Paths: map[string]joinPath{
		entity.PathCertificates: {Alias: "gc{n}", Clauses: []string{
			"gift_certificate_tag AS gct{n} ON gct{n}.tag_id = t.id",
			"gift_certificate AS gc{n} ON gc{n}.id = gct{n}.gift_certificate_id",
		}},
	},
}

var orderSource = &searchSource{
	Table:   "orders",
	Alias:   "o",
	Key:     "id",
	Columns: []string{"id", "user_id", "cost", "purchase_date"},
	Paths: map[string]joinPath{
		entity.PathCertificates: {Alias: "gc{n}", Clauses: []string{
			"order_gift_certificate AS ogc{n} ON ogc{n}.order_id = o.id",
			"gift_certificate AS gc{n} ON gc{n}.id = ogc{n}.gift_certificate_id",
		}},
		entity.PathUser: {Alias: "u{n}", Clauses: []string{
			"users AS u{n} ON u{n}.id = o.user_id",
		}},
	},
}

var userSource = &searchSource{
	Table:   "users",
	Alias:   "u",
	Key:     "id",
	Columns: []string{"id", "username"},
	Paths: map[string]joinPath{
		entity.PathOrders: {Alias: "o{n}", Clauses: []string{
			"orders AS o{n} ON o{n}.user_id = u.id",
		}},
	},
}

func scanGiftCertificate(row rowScanner) (*entity.GiftCertificate, error) {
	var c entity.GiftCertificate
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Price, &c.Duration, &c.CreateDate, &c.LastUpdateDate); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanTag(row rowScanner) (*entity.Tag, error) {
	var t entity.Tag
	if err := row.Scan(&t.ID, &t.Name); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanOrder(row rowScanner) (*entity.Order, error) {
	var o entity.Order
	if err := row.Scan(&o.ID, &o.UserID, &o.Cost, &o.PurchaseDate); err != nil {
		return nil, err
	}
	return &o, nil
}

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Username); err != nil {
		return nil, err
	}
	return &u, nil
}

// loadCertificateTags completa Tags de los certificados de la página con una sola consulta.
func loadCertificateTags(ctx context.Context, q DBTX, certs []*entity.GiftCertificate) error {
	byID := make(map[string]*entity.GiftCertificate, len(certs))
	ids := make([]string, 0, len(certs))
	for _, c := range certs {
		c.Tags = []entity.Tag{}
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}

	query, args, err := sq.Select("gct.gift_certificate_id", "t.id", "t.name").
		From("gift_certificate_tag AS gct").
		Join("tag AS t{n} ON t{n}.id = gct{n}.tag_id").
		Where(sq.Eq{"gct.gift_certificate_id": ids}).
		OrderBy("t.name ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build certificate tags: %w", err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("certificate tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var certID string
		var t entity.Tag
		if err := rows.Scan(&certID, &t.ID, &t.Name); err != nil {
			return fmt.Errorf("scan certificate tag: %w", err)
		}
		if c, ok := byID[certID]; ok {
			c.Tags = append(c.Tags, t)
		}
	}
	return rows.Err()
}

// loadOrderCertificates completa Certificates de las órdenes de la página.
func loadOrderCertificates(ctx context.Context, q DBTX, orders []*entity.Order) error {
	byID := make(map[string]*entity.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		o.Certificates = []entity.GiftCertificate{}
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	query, args, err := sq.Select("ogc.order_id", "gc.id", "gc.name", "gc.description", "gc.price", "gc.duration", "gc.create_date", "gc.last_update_date").
		From("order_gift_certificate AS ogc").
		Join("gift_certificate AS gc{n} ON gc{n}.id = ogc{n}.gift_certificate_id").
		Where(sq.Eq{"ogc.order_id": ids}).
		OrderBy("gc.name ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build order certificates: %w", err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("order certificates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var c entity.GiftCertificate
		if err := rows.Scan(&orderID, &c.ID, &c.Name, &c.Description, &c.Price, &c.Duration, &c.CreateDate, &c.LastUpdateDate); err != nil {
			return fmt.Errorf("scan order certificate: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Certificates = append(o.Certificates, c)
		}
	}
	return rows.Err()
}
