// Package gen emits accessor function definitions for validated accessor
// specs. Emission cannot fail: every condition it relies on has been checked
// by the validator, and a violation here is a bug there.
package gen

import (
	"github.com/eliduvid/unionfield/internal/codefmt"
	"github.com/eliduvid/unionfield/internal/unionfield/parse"
)

// runtimePkg hosts the Unhandled helper referenced by generated dispatch
// code.
const runtimePkg = "github.com/eliduvid/unionfield"

// WriteAccessor writes one accessor function definition. The writer's
// namespace is used for body-local names and should be scoped to this
// function.
func WriteAccessor(w *codefmt.Writer, acc parse.Accessor) {
	switch acc.Kind {
	case parse.KindRead:
		writeRead(w, acc)
	case parse.KindMut:
		writeMut(w, acc)
	case parse.KindOwn:
		writeOwn(w, acc)
	}
}

// writeRead emits an accessor returning the field value, or its read-only
// view when a coercion applies.
func writeRead(w *codefmt.Writer, acc parse.Accessor) {
	w.Printf("// %s returns the %s field shared by every variant of %s.\n",
		acc.Name, acc.Field, acc.Union.Name)

	v := w.Name("v")
	if acc.Coerce == parse.CoerceNone {
		w.Printf("func %s(%s %t) %t {\n", acc.Name, v, acc.Union, codefmt.Type(acc.FieldType))
	} else {
		w.Printf("func %s(%s %t) %s {\n", acc.Name, v, acc.Union, acc.Declared)
	}

	writeDispatch(w, acc, v, func(variant parse.Variant) {
		field := w.Sprintf("%s.%s.%s", v, variant.PayloadField.Name(), acc.Field)
		switch acc.Coerce {
		case parse.CoerceBufferBytes:
			w.Printf("return %s.Bytes()\n", field)
		case parse.CoerceBuilderString:
			w.Printf("return %s.String()\n", field)
		default:
			w.Printf("return %s\n", field)
		}
	})
	w.Printf("}\n")
}

// writeMut emits an accessor returning a pointer to the field. Under the
// bytes.Buffer coercion it returns the Bytes() slice instead: a slice already
// is a mutable view of its backing array.
func writeMut(w *codefmt.Writer, acc parse.Accessor) {
	v := w.Name("v")
	if acc.Coerce == parse.CoerceNone {
		w.Printf("// %s returns a pointer to the %s field shared by every variant of %s.\n",
			acc.Name, acc.Field, acc.Union.Name)
		w.Printf("func %s(%s %t) *%t {\n", acc.Name, v, acc.Union, codefmt.Type(acc.FieldType))
	} else {
		w.Printf("// %s returns the %s field shared by every variant of %s as a mutable byte view.\n",
			acc.Name, acc.Field, acc.Union.Name)
		w.Printf("func %s(%s %t) %s {\n", acc.Name, v, acc.Union, acc.Declared)
	}

	writeDispatch(w, acc, v, func(variant parse.Variant) {
		field := w.Sprintf("%s.%s.%s", v, variant.PayloadField.Name(), acc.Field)
		if acc.Coerce == parse.CoerceBufferBytes {
			w.Printf("return %s.Bytes()\n", field)
		} else {
			w.Printf("return &%s\n", field)
		}
	})
	w.Printf("}\n")
}

// writeOwn emits an accessor that consumes the union value and returns the
// field. Coercions never apply to owning accessors.
func writeOwn(w *codefmt.Writer, acc parse.Accessor) {
	w.Printf("// %s consumes %s and returns its %s field. The value must not be\n",
		acc.Name, acc.Union.Name, acc.Field)
	w.Printf("// used after the call.\n")

	v := w.Name("v")
	w.Printf("func %s(%s %t) %t {\n", acc.Name, v, acc.Union, codefmt.Type(acc.FieldType))

	writeDispatch(w, acc, v, func(variant parse.Variant) {
		w.Printf("return %s.%s.%s\n", v, variant.PayloadField.Name(), acc.Field)
	})
	w.Printf("}\n")
}

// writeDispatch writes the exhaustive type switch over all variants of the
// accessor's union, calling arm for each case body. The trailing panic is
// unreachable for values built from the declared variant set; it diagnoses
// foreign implementations and variants stored by value.
func writeDispatch(w *codefmt.Writer, acc parse.Accessor, v string, arm func(parse.Variant)) {
	w.Printf("switch %s := %s.(type) {\n", v, v)
	for _, variant := range acc.Union.Variants {
		w.Printf("case %t:\n", variant.Ptr())
		arm(variant)
	}
	w.Printf("}\n")

	rt := w.Import(runtimePkg, "unionfield")
	w.Printf("panic(%s.Unhandled(%q, %s))\n", rt, acc.Union.Name, v)
}
