package coll

// Ptr converts a pointed-to value through f, preserving nil.
func Ptr[T, U any](p *T, f func(T) U) *U {
	if p == nil {
		return nil
	}
	u := f(*p)
	return &u
}
