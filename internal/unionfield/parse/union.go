package parse

import (
	"errors"
	"go/token"
	"go/types"
	"slices"

	"github.com/eliduvid/unionfield/internal/codefmt"
	"github.com/eliduvid/unionfield/internal/typeinfo"
)

// Variant is one discovered implementation of a union interface. Accessors
// dispatch on the pointer type, so the marker method should be declared on
// the variant struct itself, and union values should hold variant pointers.
type Variant struct {
	// Obj is the type name object of the variant struct.
	Obj *types.TypeName

	// PayloadField is the single embedded field of the variant struct.
	PayloadField *types.Var

	// Payload is the named struct type the variant embeds.
	Payload typeinfo.Type
}

func (v Variant) Name() string       { return v.Obj.Name() }
func (v Variant) Pos() token.Pos     { return v.Obj.Pos() }
func (v Variant) Type() types.Type   { return v.Obj.Type() }
func (v Variant) Ptr() typeinfo.Type { return typeinfo.TypeOf(v.Obj.Type()).Ref() }

// ResolveVariants discovers the variant structs of the union and checks their
// shape: every variant must be a struct wrapping exactly one embedded payload
// struct. Variants are recorded on the union in source order. All shape
// violations of the package are reported together.
func (p *Parser) ResolveVariants(u *Union) error {
	scope := p.pkg.Types.Scope()

	var named []*types.TypeName
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}

		t := typeinfo.TypeOf(obj.Type())
		if t.IsInterface() || t.IsGeneric() || !t.IsNamed() {
			continue
		}

		if types.AssertableTo(u.Iface, t.Ref().Pointer) {
			named = append(named, obj)
		}
	}

	// Scope names are alphabetical; report and dispatch in source order.
	slices.SortFunc(named, func(a, b *types.TypeName) int {
		return int(a.Pos() - b.Pos())
	})

	var errs error
	for _, obj := range named {
		v, err := p.resolveVariant(u, obj)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		u.Variants = append(u.Variants, v)
	}
	if errs != nil {
		return errs
	}

	if len(u.Variants) == 0 {
		return codefmt.Errorf(p, u, ErrUnsupportedShape,
			"union %s has no variant implementations in this package", u.Name)
	}
	return nil
}

// resolveVariant checks the shape of one variant struct and resolves its
// payload record.
func (p *Parser) resolveVariant(u *Union, obj *types.TypeName) (Variant, error) {
	t := typeinfo.TypeOf(obj.Type())
	if !t.IsStruct() {
		return Variant{}, codefmt.Errorf(p, obj, ErrUnsupportedShape,
			"variant %s of union %s must be a struct wrapping one payload struct, not %t",
			obj.Name(), u.Name, t.Named.Underlying())
	}

	switch n := t.Struct.NumFields(); {
	case n == 0:
		return Variant{}, codefmt.Errorf(p, obj, ErrUnsupportedShape,
			"variant %s of union %s is a unit struct; it must wrap one payload struct",
			obj.Name(), u.Name)
	case n > 1:
		return Variant{}, codefmt.Errorf(p, obj, ErrUnsupportedShape,
			"variant %s of union %s has %d fields; it must wrap exactly one payload struct",
			obj.Name(), u.Name, n)
	}

	field := t.Struct.Field(0)
	if !field.Embedded() {
		return Variant{}, codefmt.Errorf(p, obj, ErrUnsupportedShape,
			"variant %s of union %s declares named field %s; only a single embedded payload struct is supported",
			obj.Name(), u.Name, field.Name())
	}

	payload := typeinfo.TypeOf(field.Type())
	if !payload.IsNamed() || !payload.IsStruct() {
		return Variant{}, codefmt.Errorf(p, obj, ErrUnsupportedShape,
			"variant %s of union %s embeds %t; the payload must be a named struct",
			obj.Name(), u.Name, field.Type())
	}

	return Variant{Obj: obj, PayloadField: field, Payload: payload}, nil
}
