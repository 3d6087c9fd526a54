// Package search implementa el motor genérico de búsqueda: traduce parámetros de URL
// (f:, p:, s:, page, size, fold) a un árbol de predicados independiente del almacenamiento
// y arma la respuesta paginada con sus enlaces de navegación.
package search

// EntityType identifica un tipo de entidad filtrable.
type EntityType string

// FieldDescriptor campo filtrable de una entidad: nombre lógico, alias aceptados y columna real.
type FieldDescriptor struct {
	LogicalName   string
	Aliases       []string
	StorageColumn string
}

// JoinRef relación declarada por un catálogo hacia otra entidad registrada.
type JoinRef struct {
	Related EntityType
	Path    string
}

// JoinDescriptor relación ya resuelta: cómo se llega a la entidad relacionada y con qué
// prefijo se nombran sus parámetros (ej. "t." para etiquetas vistas desde un certificado).
type JoinDescriptor struct {
	Related  EntityType
	JoinPath string
	Prefix   string
}

// FieldCatalog tabla estática de campos filtrables de un tipo de entidad.
type FieldCatalog interface {
	EntityType() EntityType
	Prefix() string
	Fields() []FieldDescriptor
	Joins() []JoinRef
}

// StaticCatalog implementación de FieldCatalog declarada a mano junto a cada entidad.
type StaticCatalog struct {
	Type        EntityType
	FieldPrefix string
	FieldList   []FieldDescriptor
	JoinList    []JoinRef
}

var _ FieldCatalog = StaticCatalog{}

func (c StaticCatalog) EntityType() EntityType    { return c.Type }
func (c StaticCatalog) Prefix() string            { return c.FieldPrefix }
func (c StaticCatalog) Fields() []FieldDescriptor { return c.FieldList }
func (c StaticCatalog) Joins() []JoinRef          { return c.JoinList }
