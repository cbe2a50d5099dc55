package parser

// TypeKind classifies a TypeExpr node.
type TypeKind int

const (
	// KindLeaf is a type the mapper passes through verbatim. Unrecognized
	// shapes (fixed arrays, channels, funcs) fall back here.
	KindLeaf TypeKind = iota
	// KindTypeParam references a generic parameter of the enclosing type.
	// It is structural and never rewritten.
	KindTypeParam
	// KindPointer wraps one element type.
	KindPointer
	// KindList is a known list container: []T or coll.List[T].
	KindList
	// KindMap is a known map container: map[K]V or coll.Map[K, V].
	KindMap
	// KindGeneric is an unknown generic application; the mapper keeps the
	// constructor and recurses into the arguments only.
	KindGeneric
)

// TypeExpr is a closed recursive type shape. Leaves keep their exact source
// text; known containers record whether they were written in immutable form.
type TypeExpr struct {
	Kind      TypeKind
	Name      string     // leaf text, type param name, or generic constructor name
	Immutable bool       // KindList/KindMap only: declared in coll form
	Args      []TypeExpr // Pointer/List: 1, Map: 2 (key, value), Generic: n
}

// ContainsImmutable reports whether any node is an immutable-form container.
// It drives direction inference: a type already using immutable containers
// collapses back to the mutable form.
func (t TypeExpr) ContainsImmutable() bool {
	if (t.Kind == KindList || t.Kind == KindMap) && t.Immutable {
		return true
	}
	for _, a := range t.Args {
		if a.ContainsImmutable() {
			return true
		}
	}
	return false
}
