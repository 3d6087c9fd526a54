package search

import "strings"

// Builder traduce una SearchParamRequest en un árbol de predicados y una lista de órdenes.
type Builder struct {
	registry *Registry
}

// NewBuilder construye el builder sobre el registro de metadatos.
func NewBuilder(registry *Registry) *Builder {
	return &Builder{registry: registry}
}

// Build arma la consulta para t. related limita los joins considerados; vacío usa todos los del catálogo.
// Los grupos se combinan con AND en este orden: raíz exacto, raíz parcial, joins exacto, joins parcial.
func (b *Builder) Build(req SearchParamRequest, t EntityType, related ...EntityType) Query {
	desc := b.registry.Describe(t)
	joins := selectJoins(desc, related)

	groups := []Expr{
		fullGroup(req.FullParams, desc, nil),
		partGroup(req.PartParams, desc, nil),
	}
	for i := range joins {
		groups = append(groups, fullGroup(req.FullParams, desc, &joins[i]))
	}
	for i := range joins {
		groups = append(groups, partGroup(req.PartParams, desc, &joins[i]))
	}

	orderBy := orderings(req.SortParams, desc, nil)
	for i := range joins {
		orderBy = append(orderBy, orderings(req.SortParams, desc, &joins[i])...)
	}

	return Query{Where: AllOf(groups...), OrderBy: orderBy, Distinct: true}
}

func selectJoins(desc *Description, related []EntityType) []JoinDescriptor {
	all := desc.JoinList()
	if len(related) == 0 {
		return all
	}
	wanted := make(map[EntityType]bool, len(related))
	for _, t := range related {
		wanted[t] = true
	}
	out := make([]JoinDescriptor, 0, len(all))
	for _, j := range all {
		if wanted[j.Related] {
			out = append(out, j)
		}
	}
	return out
}

// lookup resuelve la clave y confirma que pertenece al grupo pedido (raíz si join es nil).
func lookup(desc *Description, key string, join *JoinDescriptor) (FieldDescriptor, bool) {
	t, ok := desc.Resolve(key)
	if !ok {
		return FieldDescriptor{}, false
	}
	switch {
	case join == nil && t.Join == nil:
		return t.Field, true
	case join != nil && t.Join != nil && t.Join.JoinPath == join.JoinPath:
		return t.Field, true
	}
	return FieldDescriptor{}, false
}

func wrap(e Expr, join *JoinDescriptor) Expr {
	if join == nil {
		return e
	}
	return Join{Path: join.JoinPath, Expr: e}
}

func fullGroup(params ParamList, desc *Description, join *JoinDescriptor) Expr {
	var exprs []Expr
	for _, p := range params {
		f, ok := lookup(desc, p.Key, join)
		if !ok || len(p.Values) == 0 {
			continue
		}
		exprs = append(exprs, wrap(Eq{Column: f.StorageColumn, Values: append([]string(nil), p.Values...)}, join))
	}
	return AllOf(exprs...)
}

func partGroup(params ParamList, desc *Description, join *JoinDescriptor) Expr {
	var exprs []Expr
	for _, p := range params {
		f, ok := lookup(desc, p.Key, join)
		if !ok {
			continue
		}
		for _, v := range p.Values {
			exprs = append(exprs, wrap(Like{Column: f.StorageColumn, Pattern: "%" + EscapeLike(v) + "%"}, join))
		}
	}
	return AllOf(exprs...)
}

func orderings(params ParamList, desc *Description, join *JoinDescriptor) []Ordering {
	var out []Ordering
	for _, p := range params {
		f, ok := lookup(desc, p.Key, join)
		if !ok {
			continue
		}
		path := ""
		if join != nil {
			path = join.JoinPath
		}
		for _, v := range p.Values {
			o, valid := normalizeOrder(v)
			out = append(out, Ordering{Path: path, Column: f.StorageColumn, Desc: !valid || o == OrderDesc})
		}
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// EscapeLike antepone la barra invertida a los comodines de LIKE para que el valor se busque literal.
func EscapeLike(v string) string {
	return likeEscaper.Replace(v)
}
