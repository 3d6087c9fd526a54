package postgres

import (
	"fmt"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// joinPath cómo se alcanza una entidad relacionada desde la raíz: alias de la tabla final y
// cláusulas LEFT JOIN en orden. "{n}" marca el sufijo de cada instancia del join.
type joinPath struct {
	Alias   string
	Clauses []string
}

func (p joinPath) alias(suffix string) string {
	return strings.ReplaceAll(p.Alias, "{n}", suffix)
}

func (p joinPath) clauses(suffix string) []string {
	out := make([]string, len(p.Clauses))
	for i, c := range p.Clauses {
		out[i] = strings.ReplaceAll(c, "{n}", suffix)
	}
	return out
}

// searchSource describe la tabla raíz de una búsqueda y las rutas de join que entiende.
type searchSource struct {
	Table   string
	Alias   string
	Key     string
	Columns []string
	Paths   map[string]joinPath
}

func (s *searchSource) qualified(alias, column string) string {
	return alias + "." + column
}

func (s *searchSource) keyColumn() string {
	return s.qualified(s.Alias, s.Key)
}

// joinUse una instancia de una ruta de join dentro de la consulta.
type joinUse struct {
	Path   string
	Suffix string
}

// joinUses instancias en orden de aparición. La primera instancia de cada ruta no lleva sufijo;
// las siguientes se numeran desde 2.
type joinUses []joinUse

func (u *joinUses) add(path string) string {
	n := 1
	for _, existing := range *u {
		if existing.Path == path {
			n++
		}
	}
	suffix := ""
	if n > 1 {
		suffix = strconv.Itoa(n)
	}
	*u = append(*u, joinUse{Path: path, Suffix: suffix})
	return suffix
}

// compileWhere traduce el árbol a squirrel y devuelve los joins que necesita. Cada nodo Join
// recibe su propia instancia, así dos filtros sobre la misma ruta pueden cumplirse con filas
// relacionadas distintas. Un predicado nil devuelve un Sqlizer nil.
func (s *searchSource) compileWhere(e search.Expr) (sq.Sqlizer, joinUses, error) {
	var uses joinUses
	where, err := s.lower(e, s.Alias, &uses)
	if err != nil {
		return nil, nil, err
	}
	return where, uses, nil
}

func (s *searchSource) lower(e search.Expr, alias string, uses *joinUses) (sq.Sqlizer, error) {
	switch v := e.(type) {
	case nil:
		return nil, nil
	case search.Eq:
		// Los valores llegan como texto; se compara contra la columna convertida a text.
		return sq.Eq{s.qualified(alias, v.Column) + "::text": v.Values}, nil
	case search.Like:
		return sq.Like{s.qualified(alias, v.Column) + "::text": v.Pattern}, nil
	case search.Null:
		if v.Negate {
			return sq.NotEq{s.qualified(alias, v.Column): nil}, nil
		}
		return sq.Eq{s.qualified(alias, v.Column): nil}, nil
	case search.And:
		parts, err := s.lowerAll(v, alias, uses)
		if err != nil || len(parts) == 0 {
			return nil, err
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		return sq.And(parts), nil
	case search.Or:
		parts, err := s.lowerAll(v, alias, uses)
		if err != nil || len(parts) == 0 {
			return nil, err
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		return sq.Or(parts), nil
	case search.Join:
		jp, ok := s.Paths[v.Path]
		if !ok {
			return nil, fmt.Errorf("search %s: ruta de join desconocida %q", s.Table, v.Path)
		}
		suffix := uses.add(v.Path)
		return s.lower(v.Expr, jp.alias(suffix), uses)
	default:
		return nil, fmt.Errorf("search %s: expresión no soportada %T", s.Table, e)
	}
}

func (s *searchSource) lowerAll(exprs []search.Expr, alias string, uses *joinUses) ([]sq.Sqlizer, error) {
	out := make([]sq.Sqlizer, 0, len(exprs))
	for _, e := range exprs {
		part, err := s.lower(e, alias, uses)
		if err != nil {
			return nil, err
		}
		if part != nil {
			out = append(out, part)
		}
	}
	return out, nil
}

// compileOrder traduce los órdenes. Como la página agrupa por la llave de la raíz, los campos de
// joins se ordenan por MIN (asc) o MAX (desc NULLS LAST), sobre una instancia de join por ruta
// distinta de las del filtro. Siempre termina con la llave de la raíz para desempatar.
func (s *searchSource) compileOrder(orderBy []search.Ordering, whereUses joinUses) ([]string, joinUses, error) {
	all := append(joinUses{}, whereUses...)
	var uses joinUses
	suffixes := make(map[string]string)
	out := make([]string, 0, len(orderBy)+1)
	keyOrdered := false
	for _, o := range orderBy {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		if o.Path == "" {
			col := s.qualified(s.Alias, o.Column)
			if o.Column == s.Key {
				keyOrdered = true
			}
			out = append(out, col+" "+dir)
			continue
		}
		jp, ok := s.Paths[o.Path]
		if !ok {
			return nil, nil, fmt.Errorf("search %s: ruta de join desconocida %q", s.Table, o.Path)
		}
		suffix, seen := suffixes[o.Path]
		if !seen {
			suffix = all.add(o.Path)
			suffixes[o.Path] = suffix
			uses = append(uses, joinUse{Path: o.Path, Suffix: suffix})
		}
		col := s.qualified(jp.alias(suffix), o.Column)
		if o.Desc {
			out = append(out, fmt.Sprintf("MAX(%s) DESC NULLS LAST", col))
		} else {
			out = append(out, fmt.Sprintf("MIN(%s) ASC", col))
		}
	}
	if !keyOrdered {
		out = append(out, s.keyColumn()+" ASC")
	}
	return out, uses, nil
}

func (s *searchSource) from() string {
	return s.Table + " AS " + s.Alias
}

func (s *searchSource) withJoins(b sq.SelectBuilder, uses ...joinUses) sq.SelectBuilder {
	for _, group := range uses {
		for _, u := range group {
			for _, clause := range s.Paths[u.Path].clauses(u.Suffix) {
				b = b.LeftJoin(clause)
			}
		}
	}
	return b
}

// countQuery total de filas raíz distintas que cumplen el predicado.
func (s *searchSource) countQuery(where sq.Sqlizer, uses joinUses) sq.SelectBuilder {
	b := sq.Select(fmt.Sprintf("COUNT(DISTINCT %s)", s.keyColumn())).
		From(s.from()).
		PlaceholderFormat(sq.Dollar)
	b = s.withJoins(b, uses)
	if where != nil {
		b = b.Where(where)
	}
	return b
}

// pageQuery la página pedida, una fila por raíz.
func (s *searchSource) pageQuery(where sq.Sqlizer, whereUses joinUses, order []string, orderUses joinUses, limit, offset int) sq.SelectBuilder {
	cols := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		cols = append(cols, s.qualified(s.Alias, c))
	}
	b := sq.Select(strings.Join(cols, ", ")).
		From(s.from()).
		PlaceholderFormat(sq.Dollar)
	b = s.withJoins(b, whereUses, orderUses)
	if where != nil {
		b = b.Where(where)
	}
	return b.GroupBy(s.keyColumn()).
		OrderBy(order...).
		Limit(uint64(limit)).
		Offset(uint64(offset))
}
