// Package provider loads annotated Go source packages and lowers their
// request and client declarations to ir descriptors.
package provider

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/tmstorey/reqwire/internal/directive"
	"github.com/tmstorey/reqwire/reqgen/ir"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo

// SourceProvider discovers annotated types by loading and type-checking Go
// packages from source.
type SourceProvider struct {
	// Dir is the working directory for package loading. Empty means the
	// process working directory.
	Dir string

	// Patterns are go/packages load patterns. Empty means ".".
	Patterns []string

	// Env overrides the environment for the underlying build system, in
	// os.Environ form. Nil inherits the process environment.
	Env []string
}

// Load loads the configured patterns and returns a descriptor for every
// package that declares at least one request or client. The returned slice
// follows the loader's package order.
func (p *SourceProvider) Load() ([]*ir.Package, error) {
	patterns := p.Patterns
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	cfg := &packages.Config{
		Mode: loadMode,
		Dir:  p.Dir,
		Env:  p.Env,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var out []*ir.Package
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		desc, err := newPackageBuilder(pkg).build()
		if err != nil {
			return nil, err
		}
		if len(desc.Requests) > 0 || len(desc.Clients) > 0 {
			out = append(out, desc)
		}
	}
	return out, nil
}

// packageBuilder lowers one loaded package to an ir.Package.
type packageBuilder struct {
	pkg *packages.Package
	out *ir.Package
}

func newPackageBuilder(pkg *packages.Package) *packageBuilder {
	dir := ""
	if len(pkg.GoFiles) > 0 {
		dir = filepath.Dir(pkg.GoFiles[0])
	}
	return &packageBuilder{
		pkg: pkg,
		out: &ir.Package{
			Name:    pkg.Name,
			Path:    pkg.PkgPath,
			Dir:     dir,
			Imports: make(map[string]string),
		},
	}
}

func (b *packageBuilder) build() (*ir.Package, error) {
	for _, file := range b.pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				d, err := directive.FromDoc(b.pkg.Fset, doc)
				if err != nil {
					return nil, err
				}
				if d == nil {
					continue
				}
				switch d.Kind {
				case directive.KindRequest:
					err = b.addRequest(ts, doc, d)
				case directive.KindClient:
					err = b.addClient(ts, d)
				}
				if err != nil {
					return nil, err
				}
			}
		}
	}
	return b.out, nil
}

// qualify renders package references relative to the generated package and
// records the import paths the rendered types depend on.
func (b *packageBuilder) qualify(other *types.Package) string {
	if other == b.pkg.Types {
		return ""
	}
	b.out.Imports[other.Path()] = other.Name()
	return other.Name()
}

func (b *packageBuilder) pos(n ast.Node) string {
	return b.pkg.Fset.Position(n.Pos()).String()
}

func (b *packageBuilder) addRequest(ts *ast.TypeSpec, doc *ast.CommentGroup, d *directive.Directive) error {
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return fmt.Errorf("%s: //reqwire:request on non-struct type %s", b.pos(ts), ts.Name.Name)
	}

	req := ir.Request{
		Name:        ts.Name.Name,
		Method:      d.String("method"),
		Path:        d.String("path"),
		Response:    d.String("response"),
		QueryConfig: d.String("query_config"),
		Default:     d.Flag("default"),
		Doc:         docText(doc),
		Pos:         b.pos(ts),
	}
	reqInto := d.Flag("into")

	for _, af := range st.Fields.List {
		if len(af.Names) == 0 {
			return fmt.Errorf("%s: request type %s: embedded fields are not supported", b.pos(af), req.Name)
		}
		tag, err := fieldTag(af)
		if err != nil {
			return fmt.Errorf("%s: request type %s: %w", b.pos(af), req.Name, err)
		}
		rt, hasRest := tag.Lookup("rest")
		var rest restTag
		if hasRest {
			rest, err = parseRestTag(rt)
			if err != nil {
				return fmt.Errorf("%s: request type %s: %w", b.pos(af), req.Name, err)
			}
			if rest.Skip {
				continue
			}
		}

		for _, name := range af.Names {
			if !name.IsExported() {
				if hasRest {
					return fmt.Errorf("%s: request type %s: field %s must be exported to carry a rest tag",
						b.pos(af), req.Name, name.Name)
				}
				continue
			}
			f, err := b.buildField(name.Name, af, tag, rest, reqInto, req.Default)
			if err != nil {
				return fmt.Errorf("%s: request type %s: %w", b.pos(af), req.Name, err)
			}
			req.Fields = append(req.Fields, f)
		}
	}

	b.out.Requests = append(b.out.Requests, req)
	return nil
}

func (b *packageBuilder) buildField(name string, af *ast.Field, tag reflect.StructTag, rest restTag, reqInto, reqDefault bool) (ir.Field, error) {
	tv := b.pkg.TypesInfo.TypeOf(af.Type)
	if tv == nil {
		return ir.Field{}, fmt.Errorf("field %s: cannot resolve type", name)
	}

	f := ir.Field{
		Name:     name,
		Role:     rest.Role,
		Default:  rest.Default || reqDefault,
		Validate: rest.Validate,
		Rules:    rest.Rules,
		Doc:      docText(af.Doc),
	}

	elemType := tv
	if ptr, ok := tv.(*types.Pointer); ok {
		f.Optional = true
		elemType = ptr.Elem()
	}
	f.Type = types.TypeString(tv, b.qualify)
	f.Elem = types.TypeString(elemType, b.qualify)

	if rest.Into || reqInto {
		if u := underlyingBasic(elemType); u != "" && u != f.Elem {
			f.Underlying = u
		}
	}

	switch {
	case rest.Rename != "":
		f.WireName = rest.Rename
	case jsonName(tag) != "":
		f.WireName = jsonName(tag)
	default:
		f.WireName = ir.SnakeCase(name)
	}
	if f.Role == ir.RoleHeader {
		if rest.Rename != "" {
			f.HeaderName = rest.Rename
		} else {
			f.HeaderName = ir.TrainCase(name)
		}
	}
	return f, nil
}

func (b *packageBuilder) addClient(ts *ast.TypeSpec, d *directive.Directive) error {
	if _, ok := ts.Type.(*ast.StructType); !ok {
		return fmt.Errorf("%s: //reqwire:client on non-struct type %s", b.pos(ts), ts.Name.Name)
	}

	c := ir.Client{
		ConfigName: ts.Name.Name,
		ClientName: clientName(ts.Name.Name),
		BaseURL:    d.String("base_url"),
		Pos:        b.pos(ts),
	}
	for _, entry := range strings.Split(d.String("requests"), ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		typeName, custom, hasCustom := strings.Cut(entry, "=")
		cr := ir.ClientRequest{TypeName: typeName, MethodName: typeName}
		if hasCustom {
			if custom == "" {
				return fmt.Errorf("%s: client %s: empty method name for request %s",
					b.pos(ts), c.ConfigName, typeName)
			}
			cr.MethodName = ir.ExportName(custom)
		}
		c.Requests = append(c.Requests, cr)
	}

	b.out.Clients = append(b.out.Clients, c)
	return nil
}

// clientName derives the wrapper type name from the configuration type name:
// a trailing "Config" is stripped before appending "Client".
func clientName(configName string) string {
	base := strings.TrimSuffix(configName, "Config")
	if base == "" {
		base = configName
	}
	return base + "Client"
}

// underlyingBasic returns the underlying basic type name of a named type, or
// "" when the type is not a named wrapper around a basic type.
func underlyingBasic(t types.Type) string {
	named, ok := t.(*types.Named)
	if !ok {
		return ""
	}
	basic, ok := named.Underlying().(*types.Basic)
	if !ok {
		return ""
	}
	return basic.String()
}

// fieldTag parses a field's raw tag literal into a reflect.StructTag.
func fieldTag(af *ast.Field) (reflect.StructTag, error) {
	if af.Tag == nil {
		return "", nil
	}
	raw, err := strconv.Unquote(af.Tag.Value)
	if err != nil {
		return "", fmt.Errorf("malformed struct tag %s", af.Tag.Value)
	}
	return reflect.StructTag(raw), nil
}

// jsonName returns the name portion of a json struct tag, or "" when the tag
// is absent or suppresses the field.
func jsonName(tag reflect.StructTag) string {
	v, ok := tag.Lookup("json")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(v, ",")
	if name == "-" || name == "" {
		return ""
	}
	return name
}

// docText renders a doc comment group as plain text with directive lines
// removed.
func docText(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	var lines []string
	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, directive.Prefix) {
			continue
		}
		text := strings.TrimPrefix(c.Text, "//")
		text = strings.TrimPrefix(text, " ")
		lines = append(lines, text)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
