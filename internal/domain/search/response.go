package search

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jhoicas/giftcert-api/internal/domain"
)

// PageType tipo de enlace de navegación.
type PageType string

const (
	PagePrev    PageType = "prev"
	PageCurrent PageType = "current"
	PageNext    PageType = "next"
)

// Claves con las que se devuelven los parámetros aplicados.
const (
	EchoFullParams = "fullSearchParams"
	EchoPartParams = "partSearchParams"
	EchoSortParams = "sortParams"
)

// SearchParamResponse página de resultados con su metadata de paginación.
type SearchParamResponse[E any] struct {
	Items        []E
	ShownCount   int
	FoundCount   int
	CurrentPage  int
	TotalPages   int
	PageSize     int
	Fold         bool
	EchoedParams map[string][]string
	PageLinks    map[PageType]string
}

// Assemble arma la respuesta y valida que la página pedida exista. Una página vacía cuenta como una.
func Assemble[E any](items []E, found int, req SearchParamRequest) (SearchParamResponse[E], error) {
	current := req.CurrentPage()
	total := 1
	if len(items) > 0 {
		total = (found + req.Size - 1) / req.Size
	}
	if current > total {
		return SearchParamResponse[E]{}, fmt.Errorf("%w: la página %d no existe, total de páginas %d", domain.ErrPageOutOfRange, current, total)
	}
	if items == nil {
		items = []E{}
	}

	links := map[PageType]string{PageCurrent: PageLink(current, req)}
	if current-1 >= 1 {
		links[PagePrev] = PageLink(current-1, req)
	}
	if current+1 <= total {
		links[PageNext] = PageLink(current+1, req)
	}

	return SearchParamResponse[E]{
		Items:        items,
		ShownCount:   len(items),
		FoundCount:   found,
		CurrentPage:  current,
		TotalPages:   total,
		PageSize:     req.Size,
		Fold:         req.Fold,
		EchoedParams: echo(req),
		PageLinks:    links,
	}, nil
}

// MapItems convierte los elementos conservando la metadata de la página.
func MapItems[E, D any](r SearchParamResponse[E], fn func(E) D) SearchParamResponse[D] {
	items := make([]D, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, fn(it))
	}
	return SearchParamResponse[D]{
		Items:        items,
		ShownCount:   len(items),
		FoundCount:   r.FoundCount,
		CurrentPage:  r.CurrentPage,
		TotalPages:   r.TotalPages,
		PageSize:     r.PageSize,
		Fold:         r.Fold,
		EchoedParams: r.EchoedParams,
		PageLinks:    r.PageLinks,
	}
}

// PageLink fragmento de query string para la página indicada. El orden es fijo:
// page, size, fold, filtros exactos, filtros parciales y orden.
func PageLink(page int, req SearchParamRequest) string {
	var b strings.Builder
	b.WriteString("?" + KeyPage + "=")
	b.WriteString(strconv.Itoa(page))
	b.WriteString("&" + KeySize + "=")
	b.WriteString(strconv.Itoa(req.Size))
	b.WriteString("&" + KeyFold + "=")
	if req.Fold {
		b.WriteString("on")
	} else {
		b.WriteString("off")
	}
	writeParams(&b, FullFlag, req.FullParams)
	writeParams(&b, PartFlag, req.PartParams)
	writeParams(&b, SortFlag, req.SortParams)
	return b.String()
}

func writeParams(b *strings.Builder, flag string, params ParamList) {
	for _, p := range params {
		for _, v := range p.Values {
			b.WriteString("&")
			b.WriteString(flag + flagSeparator + p.Key)
			b.WriteString("=")
			b.WriteString(url.QueryEscape(v))
		}
	}
}

func echo(req SearchParamRequest) map[string][]string {
	out := map[string][]string{
		EchoFullParams: {},
		EchoPartParams: {},
		EchoSortParams: {},
	}
	for _, p := range req.FullParams {
		out[EchoFullParams] = append(out[EchoFullParams], p.Key+"=["+strings.Join(p.Values, ", ")+"]")
	}
	for _, p := range req.PartParams {
		out[EchoPartParams] = append(out[EchoPartParams], p.Key+"=["+strings.Join(p.Values, ", ")+"]")
	}
	for _, p := range req.SortParams {
		out[EchoSortParams] = append(out[EchoSortParams], p.Key+" ["+strings.Join(p.Values, ", ")+"]")
	}
	return out
}
