package search_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/giftcert-api/internal/domain"
	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

func items(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginación
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: 20 elementos, tamaño 10 → dos páginas.
func TestAssemble_DosPaginasEnlaces(t *testing.T) {
	p := newTestParser(t)

	first, err := search.Assemble(items(10), 20, mustParse(t, p, "page=1&size=10"))
	require.NoError(t, err)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, 1, first.CurrentPage)
	assert.Contains(t, first.PageLinks, search.PageCurrent)
	assert.Contains(t, first.PageLinks, search.PageNext)
	assert.NotContains(t, first.PageLinks, search.PagePrev)

	second, err := search.Assemble(items(10), 20, mustParse(t, p, "page=2&size=10"))
	require.NoError(t, err)
	assert.Equal(t, 2, second.CurrentPage)
	assert.Contains(t, second.PageLinks, search.PagePrev)
	assert.Contains(t, second.PageLinks, search.PageCurrent)
	assert.NotContains(t, second.PageLinks, search.PageNext)
}

func TestAssemble_PaginaSiguienteAlTotalEsRechazada(t *testing.T) {
	req := mustParse(t, newTestParser(t), "page=3&size=10")

	_, err := search.Assemble([]int{}, 20, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPageOutOfRange)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestAssemble_SinResultadosUnaPagina(t *testing.T) {
	p := newTestParser(t)

	resp, err := search.Assemble[int](nil, 0, mustParse(t, p, ""))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 0, resp.ShownCount)
	assert.NotNil(t, resp.Items)
	assert.Len(t, resp.PageLinks, 1)

	_, err = search.Assemble[int](nil, 0, mustParse(t, p, "page=2"))
	assert.ErrorIs(t, err, domain.ErrPageOutOfRange)
}

func TestAssemble_ConteoMostradoIgualALosElementos(t *testing.T) {
	resp, err := search.Assemble(items(3), 3, mustParse(t, newTestParser(t), "size=10"))
	require.NoError(t, err)

	assert.Equal(t, len(resp.Items), resp.ShownCount)
	assert.Equal(t, 3, resp.FoundCount)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Equal(t, 10, resp.PageSize)
}

func TestAssemble_TotalDePaginasRedondeaHaciaArriba(t *testing.T) {
	resp, err := search.Assemble(items(1), 21, mustParse(t, newTestParser(t), "page=3&size=10"))
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalPages)
}

// ──────────────────────────────────────────────────────────────────────────────
// Enlaces y parámetros devueltos
// ──────────────────────────────────────────────────────────────────────────────

func TestAssemble_FormatoDeEnlacesEstable(t *testing.T) {
	req := mustParse(t, newTestParser(t),
		"s:t.name=desc&p:description=relax spa&f:gcName=Spa&f:gcName=Día&page=2&size=5&fold=on")

	resp, err := search.Assemble(items(5), 15, req)
	require.NoError(t, err)

	assert.Equal(t,
		"?page=2&size=5&fold=on&f:gc.name=Spa&f:gc.name=D%C3%ADa&p:gc.description=relax+spa&s:t.name=desc",
		resp.PageLinks[search.PageCurrent])
	assert.Equal(t,
		"?page=1&size=5&fold=on&f:gc.name=Spa&f:gc.name=D%C3%ADa&p:gc.description=relax+spa&s:t.name=desc",
		resp.PageLinks[search.PagePrev])
	assert.Equal(t,
		"?page=3&size=5&fold=on&f:gc.name=Spa&f:gc.name=D%C3%ADa&p:gc.description=relax+spa&s:t.name=desc",
		resp.PageLinks[search.PageNext])
}

func TestAssemble_DevuelveParametrosAplicados(t *testing.T) {
	req := mustParse(t, newTestParser(t), "f:gcName=Spa&f:gcName=Gym&p:tagName=ell")

	resp, err := search.Assemble(items(2), 2, req)
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		search.EchoFullParams: {"gc.name=[Spa, Gym]"},
		search.EchoPartParams: {"t.name=[ell]"},
		search.EchoSortParams: {"gc.id [asc]"},
	}, resp.EchoedParams)
}

func TestMapItems_ConservaMetadata(t *testing.T) {
	resp, err := search.Assemble(items(2), 12, mustParse(t, newTestParser(t), "size=2"))
	require.NoError(t, err)

	mapped := search.MapItems(resp, func(i int) string { return string(rune('a' + i - 1)) })

	assert.Equal(t, []string{"a", "b"}, mapped.Items)
	assert.Equal(t, resp.TotalPages, mapped.TotalPages)
	assert.Equal(t, resp.PageLinks, mapped.PageLinks)
	assert.Equal(t, resp.FoundCount, mapped.FoundCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ida y vuelta: el enlace CURRENT reproduce la petición
// ──────────────────────────────────────────────────────────────────────────────

func TestPageLink_IdaYVuelta(t *testing.T) {
	p := newTestParser(t)
	queries := []string{
		"",
		"page=2&size=3&fold=on",
		"f:gcName=Spa&f:gcName=a&b=c&p:description=50%25 off&s:t.name=desc&s:gc.price=asc",
		"f:tagName=&p:gc.name=ñandú&page=1&size=1",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			req := mustParse(t, p, q)
			again := mustParse(t, p, search.PageLink(req.CurrentPage(), req))

			if diff := cmp.Diff(req, again); diff != "" {
				t.Fatalf("la petición cambió tras el enlace (-orig +reparse):\n%s", diff)
			}
		})
	}
}
