package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/eliduvid/unionfield/internal/codefmt"
	"github.com/eliduvid/unionfield/internal/typeinfo"
)

// Parser scans an AST of the underlying package to collect annotated union
// interfaces and their accessor directives.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// Union is one annotated union interface together with its parsed directives
// and, after [Parser.ResolveVariants], its variant set.
type Union struct {
	// Name is the interface type name.
	Name string

	// Obj is the type name object of the interface.
	Obj *types.TypeName

	// Iface is the underlying interface type.
	Iface *types.Interface

	// Directives are the parsed accessor directives in source order.
	Directives []Directive

	// Variants are the discovered variant structs in source order. Empty
	// until [Parser.ResolveVariants] succeeds.
	Variants []Variant

	pos token.Pos
	end token.Pos
}

func (u *Union) Pos() token.Pos   { return u.pos }
func (u *Union) End() token.Pos   { return u.end }
func (u *Union) Type() types.Type { return u.Obj.Type() }

// FindUnions collects all type declarations carrying [Marker] directives, in
// source order. Interfaces without directives are ignored. Directive parse
// failures and directives on non-interface types are reported; scanning
// continues so that all diagnostics of the package surface at once.
func (p *Parser) FindUnions() ([]*Union, error) {
	var unions []*Union
	var errs error

	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				spec := spec.(*ast.TypeSpec)

				doc := spec.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}
				if doc == nil {
					continue
				}

				u, err := p.parseUnion(spec, doc)
				errs = errors.Join(errs, err)
				if u != nil {
					unions = append(unions, u)
				}
			}
		}
	}

	return unions, errs
}

// parseUnion parses the directives of one annotated type declaration. It
// returns nil without error when the doc comment carries no directives.
func (p *Parser) parseUnion(spec *ast.TypeSpec, doc *ast.CommentGroup) (*Union, error) {
	var errs error
	var directives []Directive

	for _, comment := range doc.List {
		text, ok := cutMarker(comment.Text)
		if !ok {
			if strings.HasPrefix(comment.Text, "//unionfield:") {
				// A misspelled unionfield directive should fail loudly
				// instead of being ignored as a plain comment.
				err := codefmt.Errorf(p, codefmt.Pos(comment.Pos()), ErrSyntax,
					"unknown unionfield directive %q", comment.Text)
				errs = errors.Join(errs, err)
			}
			continue
		}

		d, err := ParseDirective(text)
		d.pos = comment.Pos()
		d.end = comment.End()
		if err != nil {
			errs = errors.Join(errs, codefmt.Errorf(p, d, nil, "%w", err))
			continue
		}
		directives = append(directives, d)
	}

	if directives == nil && errs == nil {
		return nil, nil
	}

	obj, ok := p.pkg.TypesInfo.ObjectOf(spec.Name).(*types.TypeName)
	if !ok {
		return nil, errs // unresolved type, reported by the loader
	}

	t := typeinfo.TypeOf(obj.Type())
	if !t.IsInterface() {
		err := codefmt.Errorf(p, codefmt.Pos(spec.Pos()), ErrUnsupportedShape,
			"%s is not an interface; accessor directives require a union interface", obj.Name())
		return nil, errors.Join(errs, err)
	}
	if t.Interface.NumMethods() == 0 {
		err := codefmt.Errorf(p, codefmt.Pos(spec.Pos()), ErrUnsupportedShape,
			"union interface %s must declare at least one method", obj.Name())
		return nil, errors.Join(errs, err)
	}
	if errs != nil {
		return nil, errs
	}

	return &Union{
		Name:       obj.Name(),
		Obj:        obj,
		Iface:      t.Interface,
		Directives: directives,
		pos:        spec.Pos(),
		end:        spec.End(),
	}, nil
}

// cutMarker splits a comment into the directive text after [Marker].
func cutMarker(comment string) (string, bool) {
	rest, ok := strings.CutPrefix(comment, Marker)
	if !ok {
		return "", false
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return rest, true
}
