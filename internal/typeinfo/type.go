package typeinfo

import (
	"go/token"
	"go/types"
)

// Type classifies a [types.Type] from the perspective of union and payload
// inspection. At most one of the kind fields is non-nil for a given
// underlying type; Named is set in addition when the type has a name.
type Type struct {
	T types.Type

	Basic     *types.Basic
	Slice     *types.Slice
	Struct    *types.Struct
	Interface *types.Interface
	Pointer   *types.Pointer
	Named     *types.Named

	Elem *Type
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsBasic() bool     { return t.Basic != nil }
func (t Type) IsSlice() bool     { return t.Slice != nil }
func (t Type) IsStruct() bool    { return t.Struct != nil }
func (t Type) IsInterface() bool { return t.Interface != nil }
func (t Type) IsPointer() bool   { return t.Pointer != nil }
func (t Type) IsNamed() bool     { return t.Named != nil }

func (t Type) Identical(u Type) bool { return types.Identical(t.T, u.T) }

// TypeOf inspects the given type and returns a new [Type].
func TypeOf(t types.Type) Type {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return Type{T: t, Basic: tt}
	case *types.Slice:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Slice: tt, Elem: &elem}
	case *types.Struct:
		return Type{T: t, Struct: tt}
	case *types.Interface:
		return Type{T: t, Interface: tt}
	case *types.Pointer:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Pointer: tt, Elem: &elem}
	case *types.Named:
		info := TypeOf(tt.Underlying())
		info.T = t
		info.Named = tt
		return info
	}
	// Arrays, maps, channels, and signatures never appear as union variants
	// or payload records. Payload fields may still carry them; they stay
	// unclassified.
	return Type{T: t}
}

// Pkg returns the package where the type is defined. It returns nil if the
// type is not a named type.
func (t Type) Pkg() *types.Package {
	if !t.IsNamed() {
		return nil
	}
	return t.Named.Obj().Pkg()
}

// Pos returns the position where the type is defined. It returns token.NoPos
// if the type is not a named type.
func (t Type) Pos() token.Pos {
	if t.IsNamed() {
		return t.Named.Obj().Pos()
	}
	if t.IsPointer() {
		return t.Deref().Pos()
	}
	return token.NoPos
}

// Ref returns the pointer type of the type. For type of X, it returns type of
// *X.
func (t Type) Ref() Type {
	return TypeOf(types.NewPointer(t.T))
}

// Deref returns the element type if the type is a pointer. For type of *X, it
// returns type of X. If the type is not a pointer, it returns the type
// itself.
func (t Type) Deref() Type {
	if t.IsPointer() {
		return (*t.Elem).Deref()
	}
	return t
}

// StructField returns the struct field with the given name. If the type is
// not a struct or the field does not exist, it returns nil and false.
func (t Type) StructField(name string) (*types.Var, bool) {
	if !t.IsStruct() {
		return nil, false
	}

	for field := range t.Struct.Fields() {
		if field.Name() == name {
			return field, true
		}
	}

	return nil, false
}

// IsGeneric reports whether the type is generic or has any generic type
// parameters. Even though the type has type parameters, if all type arguments
// are concrete types, it returns false.
func (t Type) IsGeneric() bool {
	return isGeneric(t.T)
}

func isGeneric(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.Named:
		if t.TypeParams().Len() == 0 {
			return false
		}

		targs := t.TypeArgs()
		if targs.Len() == 0 {
			// Have type parameters but no arguments
			// e.g., Foo[T]
			return true
		}

		for i := 0; i < targs.Len(); i++ {
			if isGeneric(targs.At(i)) {
				// Some type argument is generic
				// e.g., Foo[int, T]
				return true
			}
		}
	case *types.Struct:
		for f := range t.Fields() {
			if isGeneric(f.Type()) {
				return true
			}
		}
	case *types.Interface:
		for m := range t.Methods() {
			if isGeneric(m.Type()) {
				return true
			}
		}
	case *types.Signature:
		return t.TypeParams().Len() != 0
	case *types.TypeParam:
		return true
	}
	return false
}
