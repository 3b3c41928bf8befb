package parse

import (
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Marker is the comment prefix that introduces an accessor directive in the
// doc comment of a union interface:
//
//	//unionfield:common [modifier] Field [as Name]: Type
const Marker = "//unionfield:common"

// Kind is one accessor flavor a directive asks for.
type Kind int

const (
	// KindRead is an accessor returning the field value.
	KindRead Kind = iota

	// KindMut is an accessor returning a pointer (or mutable view) of the
	// field.
	KindMut

	// KindOwn is an accessor consuming the union value and returning the
	// field.
	KindOwn
)

func (k Kind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindMut:
		return "mut"
	case KindOwn:
		return "own"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// kindsByModifier maps the directive modifier token to the accessor kinds it
// expands to. The zero modifier (no token before the field name) means
// read-only.
var kindsByModifier = map[string][]Kind{
	"":         {KindRead},
	"mut":      {KindRead, KindMut},
	"own":      {KindRead, KindMut, KindOwn},
	"all":      {KindRead, KindMut, KindOwn},
	"mut_only": {KindMut},
	"own_only": {KindOwn},
}

// Directive is one parsed accessor request. Field presence and type
// agreement are not checked here; see [Parser.Validate].
type Directive struct {
	// Field is the payload field name the directive targets.
	Field string

	// Rename is the output function name from an "as" clause. Empty unless
	// the directive carries one. Only directives expanding to a single kind
	// may rename.
	Rename string

	// Kinds are the accessor kinds to generate, in emission order.
	Kinds []Kind

	// Declared is the declared field type, normalized by go/format.
	Declared string

	// Text is the raw directive text for diagnostics.
	Text string

	pos token.Pos
	end token.Pos
}

func (d Directive) Pos() token.Pos { return d.pos }
func (d Directive) End() token.Pos { return d.end }

// ParseDirective parses the text following [Marker]. It is a pure function of
// its input; positions are attached by the scanner.
func ParseDirective(text string) (Directive, error) {
	d := Directive{Text: strings.TrimSpace(text)}

	head, typeText, ok := strings.Cut(text, ":")
	if !ok {
		return d, fmt.Errorf("%w: missing \":\" in %q", ErrSyntax, d.Text)
	}

	typeText = strings.TrimSpace(typeText)
	if typeText == "" {
		return d, fmt.Errorf("%w: missing field type in %q", ErrSyntax, d.Text)
	}

	expr, err := parser.ParseExpr(typeText)
	if err != nil {
		return d, fmt.Errorf("%w: cannot parse type %q", ErrSyntax, typeText)
	}
	var b strings.Builder
	if err := format.Node(&b, token.NewFileSet(), expr); err != nil {
		return d, fmt.Errorf("%w: cannot parse type %q", ErrSyntax, typeText)
	}
	d.Declared = b.String()

	toks := strings.Fields(head)
	switch len(toks) {
	case 1:
		// Field
		d.Field = toks[0]
	case 2:
		// modifier Field
		d.Kinds = kindsByModifier[toks[0]]
		if d.Kinds == nil {
			return d, fmt.Errorf("%w: unrecognized modifier %q in %q", ErrSyntax, toks[0], d.Text)
		}
		d.Field = toks[1]
	case 3:
		// Field as Name
		if toks[1] != "as" {
			return d, fmt.Errorf("%w: expected \"as\", got %q in %q", ErrSyntax, toks[1], d.Text)
		}
		d.Field = toks[0]
		d.Rename = toks[2]
	case 4:
		// modifier Field as Name
		d.Kinds = kindsByModifier[toks[0]]
		if d.Kinds == nil {
			return d, fmt.Errorf("%w: unrecognized modifier %q in %q", ErrSyntax, toks[0], d.Text)
		}
		if toks[2] != "as" {
			return d, fmt.Errorf("%w: expected \"as\", got %q in %q", ErrSyntax, toks[2], d.Text)
		}
		d.Field = toks[1]
		d.Rename = toks[3]
	default:
		return d, fmt.Errorf("%w: cannot parse %q", ErrSyntax, d.Text)
	}

	if d.Kinds == nil {
		d.Kinds = kindsByModifier[""]
	}

	if !token.IsIdentifier(d.Field) {
		return d, fmt.Errorf("%w: invalid field name %q in %q", ErrSyntax, d.Field, d.Text)
	}
	if d.Rename != "" && !token.IsIdentifier(d.Rename) {
		return d, fmt.Errorf("%w: invalid accessor name %q in %q", ErrSyntax, d.Rename, d.Text)
	}

	if d.Rename != "" && len(d.Kinds) != 1 {
		return d, fmt.Errorf("%w: \"as %s\" needs a single-accessor directive (read-only, mut_only, or own_only), not %q",
			ErrIllegalRename, d.Rename, d.Text)
	}

	return d, nil
}

// OutputName resolves the function name for one kind of the directive: the
// rename if present, otherwise the default per-kind name derived from the
// field (Key, KeyMut, IntoKey; intoKey for an unexported field).
func (d Directive) OutputName(kind Kind) string {
	if d.Rename != "" {
		return d.Rename
	}

	switch kind {
	case KindMut:
		return d.Field + "Mut"
	case KindOwn:
		r, size := utf8.DecodeRuneInString(d.Field)
		if unicode.IsUpper(r) {
			return "Into" + d.Field
		}
		return "into" + string(unicode.ToUpper(r)) + d.Field[size:]
	}
	return d.Field
}
