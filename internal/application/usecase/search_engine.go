package usecase

import (
	"context"

	"github.com/jhoicas/giftcert-api/internal/domain/repository"
	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// SearchEngine encadena parse → build → execute → assemble. No guarda estado por petición.
type SearchEngine struct {
	parser   *search.Parser
	builder  *search.Builder
	observer SearchObserver
}

// NewSearchEngine construye el motor. observer puede ser nil.
func NewSearchEngine(parser *search.Parser, builder *search.Builder, observer SearchObserver) *SearchEngine {
	return &SearchEngine{parser: parser, builder: builder, observer: observer}
}

// runSearch ejecuta una búsqueda sobre repo. scope (opcional) se combina con AND con los filtros del cliente.
func runSearch[E any](
	ctx context.Context,
	eng *SearchEngine,
	repo repository.Searcher[E],
	raw search.RawParams,
	t search.EntityType,
	def search.Defaults,
	scope search.Expr,
) (search.SearchParamResponse[E], error) {
	resp, err := execute(ctx, eng, repo, raw, t, def, scope)
	if eng.observer != nil {
		eng.observer.ObserveSearch(t, resp.FoundCount, err)
	}
	return resp, err
}

func execute[E any](
	ctx context.Context,
	eng *SearchEngine,
	repo repository.Searcher[E],
	raw search.RawParams,
	t search.EntityType,
	def search.Defaults,
	scope search.Expr,
) (search.SearchParamResponse[E], error) {
	req, err := eng.parser.Parse(raw, t, def)
	if err != nil {
		return search.SearchParamResponse[E]{}, err
	}
	q := eng.builder.Build(req, t)
	q.Where = search.AllOf(scope, q.Where)

	items, total, err := repo.Search(ctx, req.Criteria(q))
	if err != nil {
		return search.SearchParamResponse[E]{}, err
	}
	return search.Assemble(items, total, req)
}
