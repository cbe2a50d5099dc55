package parser

import (
	"go/ast"
	"strings"
)

const (
	toolName    = "mutty"
	verbMirror  = "mirror"
	verbInclude = "include"
	verbDefault = "default"
)

// matchDirective reports whether a single comment is a marker directive for
// the given verb and returns any trailing argument text. The tool segment is
// matched by short name or by qualified suffix, so "mutty:mirror",
// "x/mutty:mirror" and "x.mutty:mirror" all count; this tolerates vendored
// or forked tool invocations.
func matchDirective(comment, verb string) (arg string, ok bool) {
	text, found := strings.CutPrefix(comment, "//")
	if !found {
		return "", false
	}
	if strings.HasPrefix(text, " ") || strings.HasPrefix(text, "\t") {
		// Directives are unspaced, like //go:generate.
		return "", false
	}
	tool, rest, found := strings.Cut(text, ":")
	if !found || !toolMatches(tool) {
		return "", false
	}
	v, arg, _ := strings.Cut(rest, " ")
	if v != verb {
		return "", false
	}
	return strings.TrimSpace(arg), true
}

func toolMatches(tool string) bool {
	if tool == toolName {
		return true
	}
	return strings.HasSuffix(tool, "/"+toolName) || strings.HasSuffix(tool, "."+toolName)
}

// docDirective scans a comment group for the verb.
func docDirective(doc *ast.CommentGroup, verb string) (arg string, ok bool) {
	if doc == nil {
		return "", false
	}
	for _, c := range doc.List {
		if arg, ok := matchDirective(c.Text, verb); ok {
			return arg, true
		}
	}
	return "", false
}
