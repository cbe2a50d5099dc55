package generator

import "strings"

// Artifact is one generated compilation input. OutputID is deterministic:
// "{pkgPath}.{DualName}.g", with the package segment omitted when the
// schema carries none. Duplicate IDs overwrite each other deterministically,
// which stands in for a dedup structure.
type Artifact struct {
	OutputID   string
	SourceText string
}

func outputID(pkgPath, dualName string) string {
	if pkgPath == "" {
		return dualName + ".g"
	}
	return pkgPath + "." + dualName + ".g"
}

// FileName derives the on-disk name for the artifact, e.g.
// "immutable_point.g.go" for OutputID "example.com/m.ImmutablePoint.g".
func (a Artifact) FileName() string {
	id := strings.TrimSuffix(a.OutputID, ".g")
	if i := strings.LastIndex(id, "."); i >= 0 {
		id = id[i+1:]
	}
	return snake(id) + ".g.go"
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
