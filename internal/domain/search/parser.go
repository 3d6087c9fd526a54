package search

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/giftcert-api/internal/domain"
)

// Parser clasifica los parámetros crudos en filtros exactos, parciales y de orden,
// y resuelve la paginación.
type Parser struct {
	registry *Registry
	maxSize  int
	log      zerolog.Logger
}

// NewParser construye el parser. maxSize <= 0 desactiva el tope de tamaño de página.
func NewParser(registry *Registry, maxSize int, log zerolog.Logger) *Parser {
	return &Parser{registry: registry, maxSize: maxSize, log: log}
}

// Parse interpreta los parámetros para el tipo de entidad. Las claves con alias desconocido
// se descartan sin error (quedan en el log de depuración).
func (p *Parser) Parse(raw RawParams, t EntityType, def Defaults) (SearchParamRequest, error) {
	def = normalizeDefaults(def)
	desc := p.registry.Describe(t)

	var full, part, sort ParamList
	for _, rp := range raw {
		switch rp.Key {
		case KeyPage, KeySize, KeyFold:
			continue
		}
		flag, alias, ok := splitKey(rp.Key)
		if !ok {
			p.log.Debug().Str("entity", string(t)).Str("key", rp.Key).Msg("parámetro de búsqueda ignorado: formato de clave")
			continue
		}
		key, known := desc.Canonical(alias)
		if !known {
			p.log.Debug().Str("entity", string(t)).Str("key", rp.Key).Msg("parámetro de búsqueda ignorado: alias desconocido")
			continue
		}
		switch flag {
		case FullFlag:
			full = full.merge(key, rp.Values...)
		case PartFlag:
			part = part.merge(key, rp.Values...)
		case SortFlag:
			if orders := normalizeOrders(rp.Values); len(orders) > 0 {
				sort = sort.merge(key, orders...)
			}
		default:
			p.log.Debug().Str("entity", string(t)).Str("key", rp.Key).Msg("parámetro de búsqueda ignorado: prefijo desconocido")
		}
	}
	if len(sort) == 0 && def.SortField != "" {
		sort = sort.merge(def.SortField, def.SortOrder)
	}

	page, err := positiveInt(raw, KeyPage, def.Page)
	if err != nil {
		return SearchParamRequest{}, err
	}
	size, err := positiveInt(raw, KeySize, def.Size)
	if err != nil {
		return SearchParamRequest{}, err
	}
	if p.maxSize > 0 && size > p.maxSize {
		return SearchParamRequest{}, fmt.Errorf("%w: size no puede superar %d (size = %d)", domain.ErrInvalidParameter, p.maxSize, size)
	}
	// El desplazamiento (page-1)*size debe caber en un int.
	if page-1 > math.MaxInt/size {
		return SearchParamRequest{}, fmt.Errorf("%w (page = %d, size = %d)", domain.ErrPageOutOfRange, page, size)
	}

	return SearchParamRequest{
		Page:       page - 1,
		Size:       size,
		Fold:       parseFold(raw, def.Fold),
		FullParams: full,
		PartParams: part,
		SortParams: sort,
	}, nil
}

func normalizeDefaults(def Defaults) Defaults {
	if def.Page <= 0 {
		def.Page = 1
	}
	if def.Size <= 0 {
		def.Size = 10
	}
	if o, ok := normalizeOrder(def.SortOrder); ok {
		def.SortOrder = o
	} else {
		def.SortOrder = OrderAsc
	}
	return def
}

// splitKey separa "f:gc.name" en ("f", "gc.name"). Exige exactamente un separador.
func splitKey(key string) (flag, alias string, ok bool) {
	parts := strings.Split(key, flagSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func normalizeOrders(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if o, ok := normalizeOrder(v); ok {
			out = append(out, o)
		}
	}
	return out
}

func normalizeOrder(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", OrderAsc:
		return OrderAsc, true
	case OrderDesc:
		return OrderDesc, true
	}
	return "", false
}

func positiveInt(raw RawParams, key string, def int) (int, error) {
	v, ok := raw.First(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s debe ser un entero (%s = %q)", domain.ErrInvalidParameter, key, key, v)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s debe ser mayor que cero (%s = %d)", domain.ErrInvalidParameter, key, key, n)
	}
	return n, nil
}

func parseFold(raw RawParams, def bool) bool {
	v, ok := raw.First(KeyFold)
	if !ok {
		return def
	}
	switch {
	case strings.EqualFold(v, "on"):
		return true
	case strings.EqualFold(v, "off"):
		return false
	}
	return def
}
