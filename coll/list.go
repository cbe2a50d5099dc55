package coll

import "iter"

// List is an immutable view over a copied slice. The zero value is an empty
// list. Copies are shallow: element values are shared with the source.
type List[T any] struct {
	elems []T
}

// NewList copies s into an immutable list. A nil slice yields a list that
// converts back to nil, so round trips preserve nil-ness.
func NewList[T any](s []T) List[T] {
	if s == nil {
		return List[T]{}
	}
	elems := make([]T, len(s))
	copy(elems, s)
	return List[T]{elems: elems}
}

// ListOf builds a list from the given elements.
func ListOf[T any](elems ...T) List[T] {
	return NewList(elems)
}

// NewListFunc copies s into an immutable list, converting each element
// through f.
func NewListFunc[T, U any](s []T, f func(T) U) List[U] {
	if s == nil {
		return List[U]{}
	}
	elems := make([]U, len(s))
	for i, e := range s {
		elems[i] = f(e)
	}
	return List[U]{elems: elems}
}

// ListFunc rebuilds l with each element converted through f.
func ListFunc[T, U any](l List[T], f func(T) U) List[U] {
	if l.elems == nil {
		return List[U]{}
	}
	elems := make([]U, len(l.elems))
	for i, e := range l.elems {
		elems[i] = f(e)
	}
	return List[U]{elems: elems}
}

// Len returns the number of elements.
func (l List[T]) Len() int {
	return len(l.elems)
}

// At returns the element at index i.
func (l List[T]) At(i int) T {
	return l.elems[i]
}

// All iterates index/element pairs in order.
func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range l.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Slice copies the list back into a mutable slice.
func (l List[T]) Slice() []T {
	if l.elems == nil {
		return nil
	}
	s := make([]T, len(l.elems))
	copy(s, l.elems)
	return s
}

// SliceFunc copies l into a mutable slice, converting each element through f.
func SliceFunc[T, U any](l List[T], f func(T) U) []U {
	if l.elems == nil {
		return nil
	}
	s := make([]U, len(l.elems))
	for i, e := range l.elems {
		s[i] = f(e)
	}
	return s
}

// MapSlice copies a plain slice with each element converted through f.
func MapSlice[T, U any](s []T, f func(T) U) []U {
	if s == nil {
		return nil
	}
	out := make([]U, len(s))
	for i, e := range s {
		out[i] = f(e)
	}
	return out
}
