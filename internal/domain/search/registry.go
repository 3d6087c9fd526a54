package search

import "fmt"

// Target destino de un alias: el campo y, si pertenece a una entidad relacionada, el join por el que se llega.
type Target struct {
	Key   string
	Field FieldDescriptor
	Join  *JoinDescriptor
}

// Description vista de solo lectura de los campos filtrables de una entidad.
type Description struct {
	Type   EntityType
	Prefix string
	Fields map[string]FieldDescriptor
	Joins  map[EntityType]JoinDescriptor

	joinOrder []EntityType
	targets   map[string]Target
}

// Resolve busca un alias (propio o de una entidad relacionada).
func (d *Description) Resolve(alias string) (Target, bool) {
	t, ok := d.targets[alias]
	return t, ok
}

// Canonical devuelve la clave canónica (prefijo + nombre lógico) de un alias.
func (d *Description) Canonical(alias string) (string, bool) {
	t, ok := d.targets[alias]
	if !ok {
		return "", false
	}
	return t.Key, true
}

// JoinList devuelve los joins en el orden en que los declara el catálogo.
func (d *Description) JoinList() []JoinDescriptor {
	out := make([]JoinDescriptor, 0, len(d.joinOrder))
	for _, t := range d.joinOrder {
		out = append(out, d.Joins[t])
	}
	return out
}

// Registry metadatos de todos los tipos filtrables. Se construye una vez al arrancar y
// luego solo se lee, por lo que puede compartirse entre goroutines sin bloqueo.
type Registry struct {
	descriptions map[EntityType]*Description
}

// NewRegistry construye todas las descripciones a partir de los catálogos.
func NewRegistry(catalogs ...FieldCatalog) (*Registry, error) {
	byType := make(map[EntityType]FieldCatalog, len(catalogs))
	for _, c := range catalogs {
		if _, dup := byType[c.EntityType()]; dup {
			return nil, fmt.Errorf("search: catálogo duplicado para %q", c.EntityType())
		}
		byType[c.EntityType()] = c
	}

	r := &Registry{descriptions: make(map[EntityType]*Description, len(byType))}
	for _, c := range catalogs {
		d, err := describe(c, byType)
		if err != nil {
			return nil, err
		}
		r.descriptions[c.EntityType()] = d
	}
	return r, nil
}

// Describe devuelve la descripción del tipo. Un tipo no registrado no tiene campos filtrables.
func (r *Registry) Describe(t EntityType) *Description {
	if d, ok := r.descriptions[t]; ok {
		return d
	}
	return &Description{
		Type:    t,
		Fields:  map[string]FieldDescriptor{},
		Joins:   map[EntityType]JoinDescriptor{},
		targets: map[string]Target{},
	}
}

func describe(c FieldCatalog, byType map[EntityType]FieldCatalog) (*Description, error) {
	d := &Description{
		Type:    c.EntityType(),
		Prefix:  c.Prefix(),
		Fields:  make(map[string]FieldDescriptor),
		Joins:   make(map[EntityType]JoinDescriptor),
		targets: make(map[string]Target),
	}

	for _, f := range c.Fields() {
		target := Target{Key: d.Prefix + f.LogicalName, Field: f}
		aliases, err := d.register(target)
		if err != nil {
			return nil, err
		}
		for _, a := range aliases {
			d.Fields[a] = f
		}
	}

	for _, ref := range c.Joins() {
		related, ok := byType[ref.Related]
		if !ok {
			return nil, fmt.Errorf("search: %q declara un join a %q, que no está registrado", d.Type, ref.Related)
		}
		if _, dup := d.Joins[ref.Related]; dup {
			return nil, fmt.Errorf("search: %q declara dos joins a %q", d.Type, ref.Related)
		}
		if related.Prefix() == d.Prefix {
			return nil, fmt.Errorf("search: el join %q de %q comparte el prefijo %q", ref.Path, d.Type, d.Prefix)
		}
		jd := JoinDescriptor{Related: ref.Related, JoinPath: ref.Path, Prefix: related.Prefix()}
		d.Joins[ref.Related] = jd
		d.joinOrder = append(d.joinOrder, ref.Related)

		for _, f := range related.Fields() {
			join := jd
			if _, err := d.register(Target{Key: jd.Prefix + f.LogicalName, Field: f, Join: &join}); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

// register da de alta la clave canónica y los alias de un destino. Un alias repetido dentro
// del mismo campo se acepta; apuntando a otro campo es un error de catálogo.
func (d *Description) register(t Target) ([]string, error) {
	aliases := append([]string{t.Key}, t.Field.Aliases...)
	added := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if a == "" {
			return nil, fmt.Errorf("search: alias vacío en %q (%s)", d.Type, t.Key)
		}
		if prev, ok := d.targets[a]; ok {
			if prev.Key == t.Key {
				continue
			}
			return nil, fmt.Errorf("search: alias %q de %q apunta a %s y a %s", a, d.Type, prev.Key, t.Key)
		}
		d.targets[a] = t
		added = append(added, a)
	}
	return added, nil
}
