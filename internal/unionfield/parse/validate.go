package parse

import (
	"errors"
	"go/types"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/eliduvid/unionfield/internal/codefmt"
)

// Coercion is a recognized transparent-view relation between a payload
// field's true type and a directive's declared type. The table is closed:
// these are aliasing views, never value-transforming conversions.
type Coercion int

const (
	// CoerceNone means the declared type is the field's true type.
	CoerceNone Coercion = iota

	// CoerceBufferBytes views a bytes.Buffer field as []byte via Bytes().
	// Valid for read and mutable accessors.
	CoerceBufferBytes

	// CoerceBuilderString views a strings.Builder field as string via
	// String(). Valid for read accessors only.
	CoerceBuilderString
)

// Accessor is one validated, ready-to-emit accessor function.
type Accessor struct {
	// Kind selects the accessor flavor.
	Kind Kind

	// Name is the resolved output function name.
	Name string

	// Union is the owning union with its resolved variant set.
	Union *Union

	// Field is the payload field to access.
	Field string

	// FieldType is the field's true type, identical across all variants.
	FieldType types.Type

	// Declared is the directive's declared type after normalization. Equal
	// to the formatted FieldType unless a coercion applies.
	Declared string

	// Coerce is the transparent-view relation between FieldType and
	// Declared.
	Coerce Coercion

	// Directive is the directive this accessor expands from.
	Directive Directive
}

// Validate expands the union's directives into accessors and checks them:
// field presence in every variant payload, type agreement across variants,
// coercion legality per kind, and output name uniqueness. ns carries the
// names already taken in the package, including accessors of previously
// validated unions; names of valid accessors are reserved in it.
//
// All diagnostics of the union are reported together, in source order.
func (p *Parser) Validate(u *Union, ns codefmt.NS) ([]Accessor, error) {
	var errs error

	// Output name -> Accessor, in emission order.
	byName := linkedhashmap.New()

	for _, d := range u.Directives {
		fieldType, err := p.commonFieldType(u, d)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		for _, kind := range d.Kinds {
			coerce, err := p.coercion(u, d, kind, fieldType)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}

			name := d.OutputName(kind)
			if prev, ok := byName.Get(name); ok {
				err := codefmt.Errorf(p, u, ErrDuplicateName,
					"directives %q and %q both produce an accessor named %s",
					prev.(Accessor).Directive.Text, d.Text, name)
				errs = errors.Join(errs, err)
				continue
			}
			if !ns.Reserve(name) {
				err := codefmt.Errorf(p, u, ErrDuplicateName,
					"accessor %s from directive %q collides with an existing name in the package",
					name, d.Text)
				errs = errors.Join(errs, err)
				continue
			}

			byName.Put(name, Accessor{
				Kind:      kind,
				Name:      name,
				Union:     u,
				Field:     d.Field,
				FieldType: fieldType,
				Declared:  d.Declared,
				Coerce:    coerce,
				Directive: d,
			})
		}
	}

	if errs != nil {
		return nil, errs
	}

	accs := make([]Accessor, 0, byName.Size())
	for _, v := range byName.Values() {
		accs = append(accs, v.(Accessor))
	}
	return accs, nil
}

// commonFieldType looks the directive's field up in every variant payload and
// returns its type, which must be identical across all variants.
func (p *Parser) commonFieldType(u *Union, d Directive) (types.Type, error) {
	var errs error
	var fieldType types.Type
	var firstVariant string

	for _, v := range u.Variants {
		field, ok := v.Payload.StructField(d.Field)
		if !ok {
			errs = errors.Join(errs, codefmt.Errorf(p, v, ErrMissingField,
				"variant %s payload %t has no field %s (directive %q)",
				v.Name(), v.Payload, d.Field, d.Text))
			continue
		}

		if !field.Exported() && v.Payload.Pkg() != p.pkg.Types {
			errs = errors.Join(errs, codefmt.Errorf(p, v, ErrMissingField,
				"field %s of payload %t is not exported from package %s (directive %q)",
				d.Field, v.Payload, v.Payload.Pkg().Path(), d.Text))
			continue
		}

		if fieldType == nil {
			fieldType = field.Type()
			firstVariant = v.Name()
			continue
		}

		if !types.Identical(fieldType, field.Type()) {
			errs = errors.Join(errs, codefmt.Errorf(p, v, ErrTypeMismatch,
				"field %s is %t in variant %s but %t in variant %s",
				d.Field, fieldType, firstVariant, field.Type(), v.Name()))
		}
	}

	if errs != nil {
		return nil, errs
	}
	return fieldType, nil
}

// coercion relates the directive's declared type to the field's true type
// for one accessor kind. Read and mutable view requests for the same field
// are validated independently of each other.
func (p *Parser) coercion(u *Union, d Directive, kind Kind, fieldType types.Type) (Coercion, error) {
	trueText := codefmt.FormatType(p, fieldType)
	if d.Declared == trueText {
		return CoerceNone, nil
	}

	switch {
	case trueText == "bytes.Buffer" && d.Declared == "[]byte" && kind != KindOwn:
		return CoerceBufferBytes, nil
	case trueText == "strings.Builder" && d.Declared == "string" && kind == KindRead:
		return CoerceBuilderString, nil
	}

	if kind == KindOwn {
		return CoerceNone, codefmt.Errorf(p, u, ErrTypeMismatch,
			"owning accessor for field %s must declare its true type %s, not %s (directive %q)",
			d.Field, trueText, d.Declared, d.Text)
	}
	return CoerceNone, codefmt.Errorf(p, u, ErrTypeMismatch,
		"field %s of union %s is %s, and %s is not a recognized view of it (directive %q)",
		d.Field, u.Name, trueText, d.Declared, d.Text)
}
