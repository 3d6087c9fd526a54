package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/giftcert-api/internal/domain/entity"
	"github.com/jhoicas/giftcert-api/internal/domain/repository"
	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// DBTX lo que usa una búsqueda dentro de su transacción (*sql.Tx o *sql.DB).
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

var (
	_ repository.Searcher[*entity.GiftCertificate] = (*SearchRepo[*entity.GiftCertificate])(nil)
	_ repository.Searcher[*entity.Tag]             = (*SearchRepo[*entity.Tag])(nil)
	_ repository.Searcher[*entity.Order]           = (*SearchRepo[*entity.Order])(nil)
	_ repository.Searcher[*entity.User]            = (*SearchRepo[*entity.User])(nil)
)

// SearchRepo ejecuta búsquedas dinámicas sobre una entidad raíz. Conteo, página y relaciones
// se leen en una transacción de solo lectura REPEATABLE READ para que el total coincida con la página.
type SearchRepo[E any] struct {
	db     *sql.DB
	source *searchSource
	scan   func(rowScanner) (E, error)
	unfold func(ctx context.Context, q DBTX, items []E) error
}

// NewGiftCertificateSearch búsquedas de certificados; sin fold carga sus etiquetas.
func NewGiftCertificateSearch(db *sql.DB) *SearchRepo[*entity.GiftCertificate] {
	return &SearchRepo[*entity.GiftCertificate]{db: db, source: giftCertificateSource, scan: scanGiftCertificate, unfold: loadCertificateTags}
}

// NewTagSearch búsquedas de etiquetas.
func NewTagSearch(db *sql.DB) *SearchRepo[*entity.Tag] {
	return &SearchRepo[*entity.Tag]{db: db, source: tagSource, scan: scanTag}
}

// NewOrderSearch búsquedas de órdenes; sin fold carga sus certificados.
func NewOrderSearch(db *sql.DB) *SearchRepo[*entity.Order] {
	return &SearchRepo[*entity.Order]{db: db, source: orderSource, scan: scanOrder, unfold: loadOrderCertificates}
}

// NewUserSearch búsquedas de usuarios.
func NewUserSearch(db *sql.DB) *SearchRepo[*entity.User] {
	return &SearchRepo[*entity.User]{db: db, source: userSource, scan: scanUser}
}

// Search devuelve la página y el total de coincidencias.
func (r *SearchRepo[E]) Search(ctx context.Context, c search.Criteria) ([]E, int, error) {
	var (
		items []E
		total int
	)
	err := r.snapshot(ctx, func(tx *sql.Tx) error {
		var err error
		items, total, err = findPage(ctx, tx, r.source, c, r.scan)
		if err != nil {
			return err
		}
		if !c.Fold && r.unfold != nil && len(items) > 0 {
			return r.unfold(ctx, tx, items)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SearchRepo[E]) snapshot(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return fmt.Errorf("begin search %s: %w", r.source.Table, err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit search %s: %w", r.source.Table, err)
	}
	return nil
}

// findPage cuenta y luego trae la página con el mismo predicado. Si no hay filas o la página queda
// fuera del total, no se hace la segunda consulta.
func findPage[E any](ctx context.Context, q DBTX, src *searchSource, c search.Criteria, scan func(rowScanner) (E, error)) ([]E, int, error) {
	where, whereJoins, err := src.compileWhere(c.Query.Where)
	if err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := src.countQuery(where, whereJoins).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count %s: %w", src.Table, err)
	}
	var total int
	if err := q.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", src.Table, err)
	}
	if total == 0 || c.Offset() < 0 || c.Offset() >= total {
		return []E{}, total, nil
	}

	order, orderJoins, err := src.compileOrder(c.Query.OrderBy, whereJoins)
	if err != nil {
		return nil, 0, err
	}
	pageSQL, pageArgs, err := src.pageQuery(where, whereJoins, order, orderJoins, c.PageSize, c.Offset()).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build page %s: %w", src.Table, err)
	}
	rows, err := q.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("page %s: %w", src.Table, err)
	}
	defer rows.Close()

	items := make([]E, 0, c.PageSize)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", src.Table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("page %s: %w", src.Table, err)
	}
	return items, total, nil
}
