package mirrorgeneric

// Box wraps slices of arbitrary element types.
//
//mutty:mirror
type Box[T any, K comparable] struct {
	Items   []T
	Lookup  map[K]T
	Value   T
	History []map[string]int
	Note    *[]string
}

// Wrapper is a user generic type; its arguments still rewrite.
type Wrapper[T any] struct {
	Inner T
}

//mutty:mirror
type Holder struct {
	Boxed Wrapper[[]int]
}
