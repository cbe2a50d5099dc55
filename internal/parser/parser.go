package parser

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Parser discovers marked types in Go packages and extracts mirror schemas.
type Parser interface {
	Extract(ctx context.Context, patterns ...string) ([]*Result, error)
}

type parserImpl struct{}

// New returns the default parser.
func New() Parser {
	return &parserImpl{}
}

func (p *parserImpl) Extract(ctx context.Context, patterns ...string) ([]*Result, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedSyntax |
			packages.NeedTypes |
			packages.NeedModule,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages %v: %w", patterns, err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("packages %v have compilation errors", patterns)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %v", patterns)
	}

	results := make([]*Result, 0, len(pkgs))
	for _, pkg := range pkgs {
		res, err := extractPackage(pkg)
		if err != nil {
			return nil, err
		}
		if res != nil {
			results = append(results, res)
		}
	}
	return results, nil
}

type fileInfo struct {
	file *ast.File
	src  []byte
}

func extractPackage(pkg *packages.Package) (*Result, error) {
	res := &Result{PkgName: pkg.Name, PkgPath: pkg.PkgPath}
	if len(pkg.CompiledGoFiles) > 0 {
		res.Dir = filepath.Dir(pkg.CompiledGoFiles[0])
	}

	// Cheap syntactic prefilter before walking declarations: a file without
	// the marker text cannot contribute.
	prefilter := []byte(toolName + ":")
	var marked []fileInfo
	for _, file := range pkg.Syntax {
		name := pkg.Fset.Position(file.Pos()).Filename
		src, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if !bytes.Contains(src, prefilter) {
			continue
		}
		marked = append(marked, fileInfo{file: file, src: src})
	}

	byName := map[string]*Schema{}
	for _, fi := range marked {
		collectTypes(pkg.Fset, fi.file, fi.src, res, byName)
	}
	// Second pass so include-marked methods find their type regardless of
	// declaration order across files.
	for _, fi := range marked {
		collectMethods(pkg.Fset, fi.file, fi.src, res, byName)
	}

	if len(res.Schemas) == 0 && len(res.Diags) == 0 {
		return nil, nil
	}
	return res, nil
}

func collectTypes(fset *token.FileSet, file *ast.File, src []byte, res *Result, byName map[string]*Schema) {
	aliases := collAliases(file)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				if _, ok := docDirective(d.Doc, verbMirror); ok {
					res.Diags = append(res.Diags, diag(fset, d.Pos(), "mirror marker on unsupported declaration"))
				}
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(d.Specs) == 1 {
					doc = d.Doc
				}
				if _, ok := docDirective(doc, verbMirror); !ok {
					continue
				}
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					res.Diags = append(res.Diags, diag(fset, ts.Pos(), fmt.Sprintf("mirror marker on non-struct type %s", ts.Name.Name)))
					continue
				}
				s := buildSchema(fset, src, aliases, res, ts, st)
				byName[s.Name] = s
				res.Schemas = append(res.Schemas, s)
			}
		case *ast.FuncDecl:
			if _, ok := docDirective(d.Doc, verbMirror); ok {
				res.Diags = append(res.Diags, diag(fset, d.Pos(), "mirror marker on function declaration"))
			}
		}
	}
}

func buildSchema(fset *token.FileSet, src []byte, aliases map[string]bool, res *Result, ts *ast.TypeSpec, st *ast.StructType) *Schema {
	s := &Schema{
		Name:    ts.Name.Name,
		PkgName: res.PkgName,
		PkgPath: res.PkgPath,
	}

	fctx := &fileCtx{fset: fset, src: src, collAliases: aliases, typeParams: map[string]bool{}}
	if ts.TypeParams != nil {
		for _, f := range ts.TypeParams.List {
			constraint := exprText(fset, src, f.Type)
			for _, n := range f.Names {
				fctx.typeParams[n.Name] = true
				s.TypeParams = append(s.TypeParams, TypeParam{Name: n.Name, Constraint: constraint})
			}
		}
	}

	for _, fld := range st.Fields.List {
		if len(fld.Names) == 0 {
			// Embedded fields are not mirrored.
			continue
		}
		def := fieldDefault(fld)
		tag := ""
		if fld.Tag != nil {
			tag = fld.Tag.Value
		}
		t := fctx.typeExpr(fld.Type)
		for _, n := range fld.Names {
			if !n.IsExported() {
				continue
			}
			s.Fields = append(s.Fields, Field{Name: n.Name, Type: t, DefaultText: def, Tag: tag})
		}
	}
	return s
}

func fieldDefault(fld *ast.Field) string {
	if arg, ok := docDirective(fld.Doc, verbDefault); ok {
		return arg
	}
	if arg, ok := docDirective(fld.Comment, verbDefault); ok {
		return arg
	}
	return ""
}

func collectMethods(fset *token.FileSet, file *ast.File, src []byte, res *Result, byName map[string]*Schema) {
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if _, ok := docDirective(fn.Doc, verbInclude); !ok {
			continue
		}
		if fn.Recv == nil || len(fn.Recv.List) == 0 {
			res.Diags = append(res.Diags, diag(fset, fn.Pos(), "include marker on function without receiver"))
			continue
		}
		recv := receiverIdent(fn.Recv.List[0].Type)
		if recv == nil {
			res.Diags = append(res.Diags, diag(fset, fn.Pos(), "include marker on method with unsupported receiver"))
			continue
		}
		s, ok := byName[recv.Name]
		if !ok {
			res.Diags = append(res.Diags, diag(fset, fn.Pos(), fmt.Sprintf("include marker on method of unmirrored type %s", recv.Name)))
			continue
		}
		s.Methods = append(s.Methods, methodText(fset, src, fn, recv))
	}
}

func receiverIdent(e ast.Expr) *ast.Ident {
	switch v := e.(type) {
	case *ast.Ident:
		return v
	case *ast.StarExpr:
		return receiverIdent(v.X)
	case *ast.IndexExpr:
		return receiverIdent(v.X)
	case *ast.IndexListExpr:
		return receiverIdent(v.X)
	}
	return nil
}

// methodText captures the method source with the marker line dropped and
// records where the receiver type identifier sits in the captured text.
func methodText(fset *token.FileSet, src []byte, fn *ast.FuncDecl, recv *ast.Ident) MethodText {
	var b strings.Builder
	for _, c := range fn.Doc.List {
		if _, ok := matchDirective(c.Text, verbInclude); ok {
			continue
		}
		b.WriteString(c.Text)
		b.WriteString("\n")
	}

	declStart := fset.Position(fn.Pos()).Offset
	prefix := b.Len()
	b.Write(src[declStart:fset.Position(fn.End()).Offset])

	return MethodText{
		Text:           b.String(),
		RecvNameOffset: prefix + fset.Position(recv.Pos()).Offset - declStart,
		RecvNameLen:    len(recv.Name),
	}
}

type fileCtx struct {
	fset        *token.FileSet
	src         []byte
	collAliases map[string]bool
	typeParams  map[string]bool
}

func (c *fileCtx) typeExpr(e ast.Expr) TypeExpr {
	switch v := e.(type) {
	case *ast.Ident:
		if c.typeParams[v.Name] {
			return TypeExpr{Kind: KindTypeParam, Name: v.Name}
		}
		return TypeExpr{Kind: KindLeaf, Name: v.Name}
	case *ast.StarExpr:
		return TypeExpr{Kind: KindPointer, Args: []TypeExpr{c.typeExpr(v.X)}}
	case *ast.ArrayType:
		if v.Len == nil {
			return TypeExpr{Kind: KindList, Args: []TypeExpr{c.typeExpr(v.Elt)}}
		}
	case *ast.MapType:
		return TypeExpr{Kind: KindMap, Args: []TypeExpr{c.typeExpr(v.Key), c.typeExpr(v.Value)}}
	case *ast.IndexExpr:
		return c.genericExpr(v.X, []ast.Expr{v.Index})
	case *ast.IndexListExpr:
		return c.genericExpr(v.X, v.Indices)
	}
	return TypeExpr{Kind: KindLeaf, Name: exprText(c.fset, c.src, e)}
}

func (c *fileCtx) genericExpr(base ast.Expr, args []ast.Expr) TypeExpr {
	mapped := make([]TypeExpr, len(args))
	for i, a := range args {
		mapped[i] = c.typeExpr(a)
	}
	if sel, ok := base.(*ast.SelectorExpr); ok {
		if ident, ok := sel.X.(*ast.Ident); ok && c.collAliases[ident.Name] {
			switch {
			case sel.Sel.Name == "List" && len(mapped) == 1:
				return TypeExpr{Kind: KindList, Immutable: true, Args: mapped}
			case sel.Sel.Name == "Map" && len(mapped) == 2:
				return TypeExpr{Kind: KindMap, Immutable: true, Args: mapped}
			}
		}
	}
	return TypeExpr{Kind: KindGeneric, Name: exprText(c.fset, c.src, base), Args: mapped}
}

// collAliases resolves which import aliases in file refer to the immutable
// container package. Suffix matching tolerates forks hosted under another
// module prefix.
func collAliases(file *ast.File) map[string]bool {
	aliases := map[string]bool{}
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		if path != CollImportPath && !strings.HasSuffix(path, "/coll") {
			continue
		}
		if imp.Name != nil {
			aliases[imp.Name.Name] = true
			continue
		}
		aliases[path[strings.LastIndex(path, "/")+1:]] = true
	}
	return aliases
}

func exprText(fset *token.FileSet, src []byte, node ast.Node) string {
	start := fset.Position(node.Pos()).Offset
	end := fset.Position(node.End()).Offset
	return string(src[start:end])
}

func diag(fset *token.FileSet, pos token.Pos, msg string) Diagnostic {
	return Diagnostic{Pos: fset.Position(pos), Msg: msg}
}
