package search

import (
	"net/url"
	"strings"
)

// Claves reservadas y prefijos de los parámetros de búsqueda.
const (
	KeyPage = "page"
	KeySize = "size"
	KeyFold = "fold"

	FullFlag = "f"
	PartFlag = "p"
	SortFlag = "s"

	flagSeparator = ":"
)

// Direcciones de ordenamiento normalizadas.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// RawParam un parámetro de la query string con todos sus valores, en orden de llegada.
type RawParam struct {
	Key    string
	Values []string
}

// RawParams parámetros crudos de una petición. Conserva el orden en que llegaron las claves.
type RawParams []RawParam

// Add agrega un valor; si la clave ya existe se acumula en ella.
func (p *RawParams) Add(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Values = append((*p)[i].Values, value)
			return
		}
	}
	*p = append(*p, RawParam{Key: key, Values: []string{value}})
}

// First devuelve el primer valor de la clave.
func (p RawParams) First(key string) (string, bool) {
	for _, rp := range p {
		if rp.Key == key && len(rp.Values) > 0 {
			return rp.Values[0], true
		}
	}
	return "", false
}

// ParseQueryString lee una query string ("?page=1&f:gc.name=Spa") sin perder el orden de las claves.
func ParseQueryString(query string) RawParams {
	query = strings.TrimPrefix(query, "?")
	var raw RawParams
	for _, part := range strings.Split(query, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		raw.Add(unescape(key), unescape(value))
	}
	return raw
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

// Param una clave canónica con sus valores.
type Param struct {
	Key    string
	Values []string
}

// ParamList grupo de parámetros ordenado por la primera aparición de cada clave.
type ParamList []Param

// Get devuelve los valores de una clave.
func (l ParamList) Get(key string) ([]string, bool) {
	for _, p := range l {
		if p.Key == key {
			return p.Values, true
		}
	}
	return nil, false
}

// Keys devuelve las claves en orden.
func (l ParamList) Keys() []string {
	keys := make([]string, 0, len(l))
	for _, p := range l {
		keys = append(keys, p.Key)
	}
	return keys
}

// Len cantidad de claves distintas.
func (l ParamList) Len() int { return len(l) }

// merge devuelve una lista nueva con los valores agregados a la clave.
func (l ParamList) merge(key string, values ...string) ParamList {
	out := make(ParamList, len(l), len(l)+1)
	copy(out, l)
	for i := range out {
		if out[i].Key == key {
			vals := make([]string, 0, len(out[i].Values)+len(values))
			vals = append(vals, out[i].Values...)
			out[i].Values = append(vals, values...)
			return out
		}
	}
	return append(out, Param{Key: key, Values: append([]string(nil), values...)})
}

// SearchParamRequest petición de búsqueda ya interpretada. Se crea por petición y no se modifica.
type SearchParamRequest struct {
	Page       int // índice base cero
	Size       int
	Fold       bool
	FullParams ParamList
	PartParams ParamList
	SortParams ParamList
}

// CurrentPage número de página visible para el cliente (base uno).
func (r SearchParamRequest) CurrentPage() int { return r.Page + 1 }

// Offset filas a saltar para la página pedida.
func (r SearchParamRequest) Offset() int { return r.Page * r.Size }

// Criteria combina la consulta construida con la paginación de la petición.
func (r SearchParamRequest) Criteria(q Query) Criteria {
	return Criteria{Query: q, PageIndex: r.Page, PageSize: r.Size, Fold: r.Fold}
}

// Defaults valores por omisión de una búsqueda.
type Defaults struct {
	SortField string
	SortOrder string
	Page      int
	Size      int
	Fold      bool
}

// DefaultsFor valores estándar: orden ascendente por sortField, página 1, tamaño 10, fold apagado.
func DefaultsFor(sortField string) Defaults {
	return Defaults{SortField: sortField, SortOrder: OrderAsc, Page: 1, Size: 10}
}

// Criteria lo que necesita el ejecutor: predicado, orden y ventana de paginación.
type Criteria struct {
	Query     Query
	PageIndex int
	PageSize  int
	Fold      bool
}

// Offset filas a saltar.
func (c Criteria) Offset() int { return c.PageIndex * c.PageSize }
