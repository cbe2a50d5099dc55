package mapper

import (
	"github.com/Orange-Icepop/ReverseMutty/internal/parser"
)

// Convert returns the expression producing src, declared as from, as a
// value of to. The two shapes are structurally identical and differ only in
// container form, so the walk is total. Types outside the known-container
// table copy through untouched: unknown generic applications over rewritten
// arguments are assigned directly and left to downstream compilation, the
// same trust the method splicer extends to copied bodies.
func Convert(from, to parser.TypeExpr, src string) string {
	if !needsConv(from, to) {
		return src
	}

	switch from.Kind {
	case parser.KindPointer:
		return "coll.Ptr(" + src + ", " + closure("e", from.Args[0], to.Args[0]) + ")"

	case parser.KindList:
		fe, te := from.Args[0], to.Args[0]
		elemConv := needsConv(fe, te)
		switch {
		case !from.Immutable && to.Immutable:
			if elemConv {
				return "coll.NewListFunc(" + src + ", " + closure("e", fe, te) + ")"
			}
			return "coll.NewList(" + src + ")"
		case from.Immutable && !to.Immutable:
			if elemConv {
				return "coll.SliceFunc(" + src + ", " + closure("e", fe, te) + ")"
			}
			return src + ".Slice()"
		case from.Immutable && to.Immutable:
			return "coll.ListFunc(" + src + ", " + closure("e", fe, te) + ")"
		default:
			return "coll.MapSlice(" + src + ", " + closure("e", fe, te) + ")"
		}

	case parser.KindMap:
		// Container types are never comparable, so keys cannot be rewritten;
		// only values convert.
		fv, tv := from.Args[1], to.Args[1]
		valConv := needsConv(fv, tv)
		switch {
		case !from.Immutable && to.Immutable:
			if valConv {
				return "coll.NewMapFunc(" + src + ", " + closure("mv", fv, tv) + ")"
			}
			return "coll.NewMap(" + src + ")"
		case from.Immutable && !to.Immutable:
			if valConv {
				return "coll.StdFunc(" + src + ", " + closure("mv", fv, tv) + ")"
			}
			return src + ".Std()"
		case from.Immutable && to.Immutable:
			return "coll.MapFunc(" + src + ", " + closure("mv", fv, tv) + ")"
		default:
			return "coll.MapValues(" + src + ", " + closure("mv", fv, tv) + ")"
		}
	}

	return src
}

func needsConv(from, to parser.TypeExpr) bool {
	return RenderDeclared(from) != RenderDeclared(to)
}

func closure(arg string, from, to parser.TypeExpr) string {
	return "func(" + arg + " " + RenderDeclared(from) + ") " + RenderDeclared(to) +
		" { return " + Convert(from, to, arg) + " }"
}
