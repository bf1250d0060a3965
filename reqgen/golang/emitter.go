// Package golang renders ir descriptors as Go source: one generated file per
// package, holding a builder per request type, the request surface methods,
// and a client wrapper per client configuration.
package golang

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"sort"
	"strings"

	"github.com/tmstorey/reqwire/reqgen/ir"
)

// runtimeImport is the support library every generated file depends on.
const runtimeImport = "github.com/tmstorey/reqwire"

// Header is the first line of every generated file, in the form the Go
// tooling convention expects.
const Header = "// Code generated by reqwire. DO NOT EDIT."

// Emitter renders one package's descriptors into a Go source file.
type Emitter struct {
	buf     bytes.Buffer
	imports map[string]string // import path -> local name, "" for default
}

// EmitPackage renders pkg as a gofmt-formatted Go source file.
func EmitPackage(pkg *ir.Package) ([]byte, error) {
	e := &Emitter{imports: make(map[string]string)}
	for p, name := range pkg.Imports {
		e.imports[p] = name
	}
	e.need(runtimeImport)
	e.need("time")

	for i := range pkg.Requests {
		e.emitRequest(&pkg.Requests[i])
	}
	for i := range pkg.Clients {
		e.emitClient(&pkg.Clients[i])
	}
	return e.render(pkg.Name)
}

// need records an import the emitted body depends on.
func (e *Emitter) need(importPath string) {
	if _, ok := e.imports[importPath]; !ok {
		e.imports[importPath] = ""
	}
}

func (e *Emitter) printf(format string, args ...any) {
	fmt.Fprintf(&e.buf, format, args...)
}

// doc writes a doc comment block, one // line per input line.
func (e *Emitter) doc(text string) {
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			e.printf("//\n")
			continue
		}
		e.printf("// %s\n", line)
	}
}

// render assembles the file header, import block, and emitted body, and
// formats the result.
func (e *Emitter) render(pkgName string) ([]byte, error) {
	var out bytes.Buffer
	out.WriteString(Header)
	out.WriteString("\n\n")
	fmt.Fprintf(&out, "package %s\n\n", pkgName)

	if len(e.imports) > 0 {
		std, other := e.importGroups()
		out.WriteString("import (\n")
		for _, spec := range std {
			fmt.Fprintf(&out, "\t%s\n", spec)
		}
		if len(std) > 0 && len(other) > 0 {
			out.WriteString("\n")
		}
		for _, spec := range other {
			fmt.Fprintf(&out, "\t%s\n", spec)
		}
		out.WriteString(")\n\n")
	}

	out.Write(e.buf.Bytes())

	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// importGroups splits the needed imports into a standard-library group and
// an external group, each sorted by path.
func (e *Emitter) importGroups() (std, other []string) {
	paths := make([]string, 0, len(e.imports))
	for p := range e.imports {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		spec := fmt.Sprintf("%q", p)
		if name := e.imports[p]; name != "" && name != path.Base(p) {
			spec = name + " " + spec
		}
		if strings.Contains(p, ".") {
			other = append(other, spec)
		} else {
			std = append(std, spec)
		}
	}
	return std, other
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

// slotName is the unexported builder field holding a request field's value.
func slotName(f *ir.Field) string {
	name := ir.LowerCamel(f.Name)
	if goKeywords[name] {
		name += "_"
	}
	return name
}

// setterType is the parameter type of a field's setter: the underlying basic
// type for into fields, the element type otherwise.
func setterType(f *ir.Field) string {
	if f.Underlying != "" {
		return f.Underlying
	}
	return f.Elem
}

// formatValue renders a field read as a string expression. Plain strings
// pass through, everything else goes through fmt.Sprint.
func (e *Emitter) formatValue(expr string, f *ir.Field) string {
	if f.Elem == "string" && f.Underlying == "" {
		return expr
	}
	e.need("fmt")
	return fmt.Sprintf("fmt.Sprint(%s)", expr)
}
