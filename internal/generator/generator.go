package generator

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/Orange-Icepop/ReverseMutty/internal/mapper"
	"github.com/Orange-Icepop/ReverseMutty/internal/parser"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

// Generator renders one mirror artifact per schema. Generation is pure and
// deterministic: the same schema always yields byte-identical source text.
type Generator interface {
	Generate(schema *parser.Schema) (Artifact, error)
}

// Formatter formats generated Go code and organizes imports.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

type generatorImpl struct {
	formatter Formatter
	tmpl      *template.Template
}

type goimportsFormatter struct{}

type templateData struct {
	Package        string
	CollImport     string
	NeedsColl      bool
	SrcName        string
	DualName       string
	FormWord       string
	TypeParamsDecl string
	TypeArgs       string
	Fields         []fieldData
	Defaults       []defaultData
	Methods        []string
	ToSrcFunc      string
	ToDualFunc     string
}

type fieldData struct {
	Name       string
	Type       string
	Tag        string
	ToDualExpr string
	ToSrcExpr  string
}

type defaultData struct {
	Name string
	Text string
}

// New creates a code generator.
func New(f Formatter) Generator {
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.go.tmpl"))
	return &generatorImpl{formatter: f, tmpl: tmpl}
}

// NewGoimportsFormatter creates a formatter backed by goimports.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

func (g *generatorImpl) Generate(schema *parser.Schema) (Artifact, error) {
	data := buildTemplateData(schema)

	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "mirror.go.tmpl", data); err != nil {
		return Artifact{}, fmt.Errorf("template: %w", err)
	}

	art := Artifact{OutputID: outputID(schema.PkgPath, data.DualName)}
	formatted, err := g.formatter.Format(art.FileName(), buf.Bytes())
	if err != nil {
		return Artifact{}, fmt.Errorf("format %s: %w", art.OutputID, err)
	}
	art.SourceText = string(formatted)
	return art, nil
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

func buildTemplateData(schema *parser.Schema) templateData {
	dir := mapper.Detect(schema)
	target := dir.TargetForm()

	data := templateData{
		Package:    schema.PkgName,
		CollImport: parser.CollImportPath,
		SrcName:    schema.Name,
	}
	if dir == mapper.Expand {
		data.DualName = "Immutable" + schema.Name
		data.FormWord = "immutable"
		data.ToSrcFunc = "ToMutable"
		data.ToDualFunc = "ToImmutable"
	} else {
		data.DualName = "Mutable" + schema.Name
		data.FormWord = "mutable"
		data.ToSrcFunc = "ToImmutable"
		data.ToDualFunc = "ToMutable"
	}

	if len(schema.TypeParams) > 0 {
		decls := make([]string, len(schema.TypeParams))
		args := make([]string, len(schema.TypeParams))
		for i, tp := range schema.TypeParams {
			decls[i] = tp.Name + " " + tp.Constraint
			args[i] = tp.Name
		}
		data.TypeParamsDecl = "[" + strings.Join(decls, ", ") + "]"
		data.TypeArgs = "[" + strings.Join(args, ", ") + "]"
	}

	for _, f := range schema.Fields {
		dualType := mapper.Retag(f.Type, target)
		fd := fieldData{
			Name:       f.Name,
			Type:       mapper.RenderDeclared(dualType),
			Tag:        f.Tag,
			ToDualExpr: mapper.Convert(f.Type, dualType, "v."+f.Name),
			ToSrcExpr:  mapper.Convert(dualType, f.Type, "v."+f.Name),
		}
		data.Fields = append(data.Fields, fd)
		if f.DefaultText != "" {
			// Default text is opaque: it is trusted to remain valid against
			// the mapped field type and carried unreconciled.
			data.Defaults = append(data.Defaults, defaultData{Name: f.Name, Text: f.DefaultText})
		}
	}

	for _, m := range schema.Methods {
		data.Methods = append(data.Methods, spliceMethod(m, data.DualName))
	}

	data.NeedsColl = needsColl(data)
	return data
}

// spliceMethod rewrites the receiver type identifier to the dual type name.
// Everything else in the captured text is left untouched, so a body written
// against the source container shapes may fail to compile in the dual; the
// host compiler surfaces that on the generated file.
func spliceMethod(m parser.MethodText, dualName string) string {
	return m.Text[:m.RecvNameOffset] + dualName + m.Text[m.RecvNameOffset+m.RecvNameLen:]
}

func needsColl(data templateData) bool {
	for _, f := range data.Fields {
		if mentionsColl(f.Type) || mentionsColl(f.ToDualExpr) || mentionsColl(f.ToSrcExpr) {
			return true
		}
	}
	for _, d := range data.Defaults {
		if mentionsColl(d.Text) {
			return true
		}
	}
	for _, m := range data.Methods {
		if mentionsColl(m) {
			return true
		}
	}
	return false
}

func mentionsColl(s string) bool {
	return strings.Contains(s, "coll.")
}
