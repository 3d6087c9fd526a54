package search

// Expr nodo del árbol de predicados. Un compilador de almacenamiento lo traduce a su sintaxis.
type Expr interface {
	isExpr()
}

// Eq la columna coincide exactamente con alguno de los valores (IN).
type Eq struct {
	Column string
	Values []string
}

// Like la columna coincide con el patrón. Los comodines del valor del cliente llegan escapados
// con barra invertida, el escape por defecto de LIKE.
type Like struct {
	Column  string
	Pattern string
}

// Null la columna es nula (o no nula si Negate). Útil para alcances como "sin etiquetas".
type Null struct {
	Column string
	Negate bool
}

// And todos los hijos se cumplen.
type And []Expr

// Or al menos un hijo se cumple.
type Or []Expr

// Join evalúa Expr sobre la entidad alcanzada por Path.
type Join struct {
	Path string
	Expr Expr
}

func (Eq) isExpr()   {}
func (Like) isExpr() {}
func (Null) isExpr() {}
func (And) isExpr()  {}
func (Or) isExpr()   {}
func (Join) isExpr() {}

// AllOf combina con AND descartando nulos. Sin hijos devuelve nil; con uno, el hijo tal cual.
func AllOf(exprs ...Expr) Expr {
	kept := compact(exprs)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return And(kept)
}

// AnyOf combina con OR descartando nulos.
func AnyOf(exprs ...Expr) Expr {
	kept := compact(exprs)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return Or(kept)
}

func compact(exprs []Expr) []Expr {
	kept := make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			kept = append(kept, e)
		}
	}
	return kept
}

// Ordering criterio de orden; Path vacío indica un campo de la entidad raíz.
type Ordering struct {
	Path   string
	Column string
	Desc   bool
}

// Query resultado del builder.
type Query struct {
	Where    Expr
	OrderBy  []Ordering
	Distinct bool
}
