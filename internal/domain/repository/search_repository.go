package repository

import (
	"context"

	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// Searcher ejecuta una búsqueda dinámica: devuelve la página pedida y el total de coincidencias,
// ambos leídos del mismo snapshot.
type Searcher[E any] interface {
	Search(ctx context.Context, c search.Criteria) ([]E, int, error)
}
