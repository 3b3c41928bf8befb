// Package unionfield generates accessor functions for fields shared by every
// variant of a union-style interface.
//
// A union in Go is commonly modeled as a sealed interface with one struct per
// variant. When every variant carries the same field, reading it still takes
// a type switch at each call site. Unionfield generates that type switch
// once, as a package-level accessor function, from a directive written in the
// interface's doc comment:
//
//	//unionfield:common Key: string
//	type Event interface{ isEvent() }
//
//	type Click struct{ ClickEvent }
//	type Scroll struct{ ScrollEvent }
//
// Each variant must embed exactly one named struct holding its payload. The
// directive above requires every payload to declare a Key string field, and
// generates:
//
//	// generated: (simplified)
//	func Key(v Event) string {
//		switch v := v.(type) {
//		case *Click:
//			return v.ClickEvent.Key
//		case *Scroll:
//			return v.ScrollEvent.Key
//		}
//		panic(unionfield.Unhandled("Event", v))
//	}
//
// # Directives
//
// A directive has the form:
//
//	//unionfield:common [modifier] field [as name]: Type
//
// Without a modifier, a read accessor is generated. The modifier extends or
// restricts the accessor set:
//
//	//unionfield:common Key: string           // Key(v) string
//	//unionfield:common mut Count: int        // Count(v) int, CountMut(v) *int
//	//unionfield:common own Body: Payload     // Body, BodyMut, IntoBody
//	//unionfield:common all Body: Payload     // same as own
//	//unionfield:common mut_only Seq: uint64  // SeqMut(v) *uint64 only
//	//unionfield:common own_only Raw: []byte  // IntoRaw(v) []byte only
//
// The "as" clause renames the output. Renaming is only allowed when the
// directive produces a single accessor, because one name cannot cover
// several:
//
//	//unionfield:common Key as EventKey: string
//	//unionfield:common mut_only Seq as NextSeq: uint64
//
// Read and mutating accessors also accept a field whose type offers a
// cheap view of the declared type. A bytes.Buffer field satisfies a []byte
// directive, and a strings.Builder field satisfies a string directive for
// reading. Owning accessors move the field out as-is and never go through a
// view.
//
// After declaring directives, run the unionfield command. It will generate
// unionfield_gen.go for your package:
//
//	go run github.com/eliduvid/unionfield/cmd/unionfield
//
// Generation is all-or-nothing per package: any invalid directive reports a
// diagnostic with its source position and nothing is written.
package unionfield

import "fmt"

// Unhandled builds the panic message used by generated accessors when a value
// reaches the default arm of their type switch. That happens only when a new
// variant was added without rerunning the generator.
func Unhandled(union string, v any) string {
	return fmt.Sprintf("unionfield: unhandled %s variant %T (rerun the generator)", union, v)
}
