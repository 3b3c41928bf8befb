// Package unionfieldinternal drives the generation pipeline: scan annotated
// union interfaces, validate their directives against the variant set, and
// emit accessor functions.
package unionfieldinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"maps"

	"golang.org/x/tools/go/packages"

	"github.com/eliduvid/unionfield/internal/codefmt"
	"github.com/eliduvid/unionfield/internal/unionfield/gen"
	"github.com/eliduvid/unionfield/internal/unionfield/parse"
)

// Generator generates accessor code for the target package. Call [Build] and
// then [Generate] to get the generated code. All potential errors are
// returned by [Build]. Once [Build] succeeds, [Generate] never fails.
type Generator struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	unions    []*parse.Union
	accessors map[*parse.Union][]parse.Accessor
}

// New creates a new [Generator] for the given package. The package must have
// its Syntax, Types and TypesInfo, and must not have any errors.
func New(pkg *packages.Package) (*Generator, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Generator{
		p:         parser,
		ns:        codefmt.NewNS(pkg.Types.Scope()),
		buf:       &buf,
		w:         codefmt.NewWriter(&buf, pkg),
		accessors: make(map[*parse.Union][]parse.Accessor),
	}, nil
}

// Build prepares code generation by scanning directives and validating them
// against each union's variant set. All potential errors are returned by this
// method; any error means nothing will be generated for the package. It must
// be called before [Generate].
func (g *Generator) Build() error {
	unions, errs := g.p.FindUnions()
	g.unions = unions

	for _, u := range unions {
		if err := g.p.ResolveVariants(u); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		accs, err := g.p.Validate(u, g.ns)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		g.accessors[u] = accs
	}

	return errs
}

// Generate generates accessor code for the package. It returns nil when no
// union carries directives. It must be called after [Build] succeeds.
func (g *Generator) Generate() []byte {
	if len(g.unions) == 0 {
		return nil
	}

	for _, u := range g.unions {
		g.w.Printf("// unionfield: accessors for %s\n\n", u.Name)

		for _, acc := range g.accessors[u] {
			local := maps.Clone(g.ns)
			w := g.w.WithNS(local)
			gen.WriteAccessor(w, acc)
			g.w.Printf("\n")
		}
	}

	return g.frameCode()
}

// frameCode prepends the generated-file header and the import declaration
// collected during emission, and applies gofmt. The build constraint hides
// the previous output from the loader, so regeneration does not see its own
// accessors as name collisions.
func (g *Generator) frameCode() []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !unionfield\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/eliduvid/unionfield%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", g.p.Pkg().Name)

	if len(g.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range g.w.Imports() {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, g.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
