package parser

import "go/token"

// CollImportPath is the package generated code uses for immutable containers.
const CollImportPath = "github.com/Orange-Icepop/ReverseMutty/coll"

// Schema describes one marked type ready for mirroring. It is built once per
// declaration and not modified afterwards.
type Schema struct {
	Name       string
	PkgName    string
	PkgPath    string
	TypeParams []TypeParam
	Fields     []Field
	Methods    []MethodText
}

// TypeParam is one generic parameter with its constraint text.
type TypeParam struct {
	Name       string
	Constraint string
}

// Field is one mirrored property. DefaultText and Tag are opaque source
// text carried verbatim into the generated type.
type Field struct {
	Name        string
	Type        TypeExpr
	DefaultText string
	Tag         string
}

// MethodText is the verbatim source of an include-marked method with its
// marker line removed. RecvNameOffset/RecvNameLen locate the receiver type
// identifier inside Text so the emitter can splice the dual type name in.
type MethodText struct {
	Text           string
	RecvNameOffset int
	RecvNameLen    int
}

// Diagnostic is a positioned warning attached to an offending declaration.
// Diagnostics never abort extraction; the affected declaration is skipped.
type Diagnostic struct {
	Pos token.Position
	Msg string
}

// Result carries the schemas extracted from one package plus any
// non-fatal diagnostics.
type Result struct {
	PkgName string
	PkgPath string
	Dir     string
	Schemas []*Schema
	Diags   []Diagnostic
}
