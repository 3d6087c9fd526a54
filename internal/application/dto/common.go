package dto

import (
	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageLinks enlaces de navegación. Prev y Next se omiten cuando no existen.
type PageLinks struct {
	Prev    string `json:"prev,omitempty"`
	Current string `json:"current"`
	Next    string `json:"next,omitempty"`
}

// WithBase antepone la ruta del recurso a cada fragmento.
func (l PageLinks) WithBase(base string) PageLinks {
	prefix := func(s string) string {
		if s == "" {
			return ""
		}
		return base + s
	}
	return PageLinks{Prev: prefix(l.Prev), Current: prefix(l.Current), Next: prefix(l.Next)}
}

// PageDataResponse sobre de una página de resultados de búsqueda.
type PageDataResponse[T any] struct {
	CurrentPage int                 `json:"current_page"`
	TotalPages  int                 `json:"total_pages"`
	ItemsShown  int                 `json:"items_shown"`
	ItemsFound  int                 `json:"items_found"`
	MaxShown    int                 `json:"max_shown"`
	Fold        bool                `json:"fold"`
	Params      map[string][]string `json:"params"`
	Items       []T                 `json:"items"`
	Links       PageLinks           `json:"links"`
}

// NewPageData convierte la respuesta del motor de búsqueda al sobre HTTP.
func NewPageData[E, T any](r search.SearchParamResponse[E], fn func(E) T) *PageDataResponse[T] {
	mapped := search.MapItems(r, fn)
	return &PageDataResponse[T]{
		CurrentPage: mapped.CurrentPage,
		TotalPages:  mapped.TotalPages,
		ItemsShown:  mapped.ShownCount,
		ItemsFound:  mapped.FoundCount,
		MaxShown:    mapped.PageSize,
		Fold:        mapped.Fold,
		Params:      mapped.EchoedParams,
		Items:       mapped.Items,
		Links: PageLinks{
			Prev:    mapped.PageLinks[search.PagePrev],
			Current: mapped.PageLinks[search.PageCurrent],
			Next:    mapped.PageLinks[search.PageNext],
		},
	}
}
