package mapper

import (
	"strings"

	"github.com/Orange-Icepop/ReverseMutty/internal/parser"
)

// Direction selects which mutability form the generated dual takes.
type Direction int

const (
	// Expand mirrors a mutable type into an immutable dual.
	Expand Direction = iota
	// Collapse mirrors an immutable type back into a mutable dual.
	Collapse
)

// Form is the container spelling used when rendering a type.
type Form int

const (
	FormMutable Form = iota
	FormImmutable
)

// TargetForm returns the container form of the generated dual.
func (d Direction) TargetForm() Form {
	if d == Expand {
		return FormImmutable
	}
	return FormMutable
}

// Detect infers the direction for a schema. The markers carry no arguments,
// so the schema itself decides: a type using any immutable-form container
// collapses, everything else expands. Container-free types are symmetric
// and default to expand.
func Detect(s *parser.Schema) Direction {
	for _, f := range s.Fields {
		if f.Type.ContainsImmutable() {
			return Collapse
		}
	}
	return Expand
}

// Map rewrites t into the dual form for the given direction. This is the
// type-mapping entry point; it never fails.
func Map(t parser.TypeExpr, d Direction) string {
	return Render(t, d.TargetForm())
}

// Render writes t with every known container in the requested form. Type
// parameters and leaves pass through unchanged; unknown generic
// applications keep their constructor and recurse into arguments only.
func Render(t parser.TypeExpr, form Form) string {
	switch t.Kind {
	case parser.KindPointer:
		return "*" + Render(t.Args[0], form)
	case parser.KindList:
		if form == FormImmutable {
			return "coll.List[" + Render(t.Args[0], form) + "]"
		}
		return "[]" + Render(t.Args[0], form)
	case parser.KindMap:
		if form == FormImmutable {
			return "coll.Map[" + Render(t.Args[0], form) + ", " + Render(t.Args[1], form) + "]"
		}
		return "map[" + Render(t.Args[0], form) + "]" + Render(t.Args[1], form)
	case parser.KindGeneric:
		return t.Name + "[" + renderArgs(t.Args, renderIn(form)) + "]"
	}
	return t.Name
}

// RenderDeclared writes t exactly as declared, honoring each container's
// own form.
func RenderDeclared(t parser.TypeExpr) string {
	switch t.Kind {
	case parser.KindPointer:
		return "*" + RenderDeclared(t.Args[0])
	case parser.KindList:
		if t.Immutable {
			return "coll.List[" + RenderDeclared(t.Args[0]) + "]"
		}
		return "[]" + RenderDeclared(t.Args[0])
	case parser.KindMap:
		if t.Immutable {
			return "coll.Map[" + RenderDeclared(t.Args[0]) + ", " + RenderDeclared(t.Args[1]) + "]"
		}
		return "map[" + RenderDeclared(t.Args[0]) + "]" + RenderDeclared(t.Args[1])
	case parser.KindGeneric:
		return t.Name + "[" + renderArgs(t.Args, RenderDeclared) + "]"
	}
	return t.Name
}

// Retag copies t with every known container forced into the given form.
// The result is the TypeExpr of the corresponding dual field.
func Retag(t parser.TypeExpr, form Form) parser.TypeExpr {
	out := t
	if t.Kind == parser.KindList || t.Kind == parser.KindMap {
		out.Immutable = form == FormImmutable
	}
	if len(t.Args) > 0 {
		out.Args = make([]parser.TypeExpr, len(t.Args))
		for i, a := range t.Args {
			out.Args[i] = Retag(a, form)
		}
	}
	return out
}

func renderIn(form Form) func(parser.TypeExpr) string {
	return func(t parser.TypeExpr) string { return Render(t, form) }
}

func renderArgs(args []parser.TypeExpr, render func(parser.TypeExpr) string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = render(a)
	}
	return strings.Join(parts, ", ")
}
