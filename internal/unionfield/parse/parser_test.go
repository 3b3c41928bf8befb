package parse_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/eliduvid/unionfield/internal/codefmt"
	"github.com/eliduvid/unionfield/internal/unionfield/parse"
)

// loadPackage type-checks the given source in memory and wraps it the way the
// loader would, which is all [parse.New] needs.
func loadPackage(t *testing.T, code string) (*parse.Parser, *packages.Package) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "fixture.go", code, parser.ParseComments)
	require.NoError(t, err)

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
	cfg := &types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	tpkg, err := cfg.Check("example.com/fixture", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	pkg := &packages.Package{
		Name:      "fixture",
		PkgPath:   "example.com/fixture",
		Fset:      fset,
		Syntax:    []*ast.File{file},
		Types:     tpkg,
		TypesInfo: info,
	}

	p, err := parse.New(pkg)
	require.NoError(t, err)
	return p, pkg
}

// resolve runs the full pipeline on the source and returns the accessors of
// the single union it declares.
func resolve(t *testing.T, code string) ([]parse.Accessor, error) {
	t.Helper()

	p, pkg := loadPackage(t, code)
	unions, err := p.FindUnions()
	if err != nil {
		return nil, err
	}
	require.Len(t, unions, 1)

	u := unions[0]
	if err := p.ResolveVariants(u); err != nil {
		return nil, err
	}
	return p.Validate(u, codefmt.NewNS(pkg.Types.Scope()))
}

const eventFixture = `package fixture

// Event is an input event.
//
//unionfield:common Key: string
//unionfield:common mut Count: int
type Event interface{ isEvent() }

type ClickPayload struct {
	Key   string
	Count int
	X, Y  int
}

type ScrollPayload struct {
	Key   string
	Count int
	Delta int
}

type Click struct{ ClickPayload }

func (*Click) isEvent() {}

type Scroll struct{ ScrollPayload }

func (*Scroll) isEvent() {}
`

func TestFindUnions(t *testing.T) {
	p, _ := loadPackage(t, eventFixture)

	unions, err := p.FindUnions()
	require.NoError(t, err)
	require.Len(t, unions, 1)

	u := unions[0]
	assert.Equal(t, "Event", u.Name)
	require.Len(t, u.Directives, 2)
	assert.Equal(t, "Key", u.Directives[0].Field)
	assert.Equal(t, "Count", u.Directives[1].Field)
}

func TestFindUnionsIgnoresPlainComments(t *testing.T) {
	p, _ := loadPackage(t, `package fixture

// Event has no directives, just words.
type Event interface{ isEvent() }
`)

	unions, err := p.FindUnions()
	require.NoError(t, err)
	assert.Empty(t, unions)
}

func TestFindUnionsUnknownDirective(t *testing.T) {
	p, _ := loadPackage(t, `package fixture

//unionfield:shared Key: string
type Event interface{ isEvent() }

type ClickPayload struct{ Key string }

type Click struct{ ClickPayload }

func (*Click) isEvent() {}
`)

	_, err := p.FindUnions()
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrSyntax)
}

func TestFindUnionsNonInterface(t *testing.T) {
	p, _ := loadPackage(t, `package fixture

//unionfield:common Key: string
type Record struct{ Key string }
`)

	_, err := p.FindUnions()
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrUnsupportedShape)
}

func TestFindUnionsEmptyInterface(t *testing.T) {
	p, _ := loadPackage(t, `package fixture

//unionfield:common Key: string
type Any interface{}
`)

	_, err := p.FindUnions()
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrUnsupportedShape)
}

func TestResolveVariants(t *testing.T) {
	p, _ := loadPackage(t, eventFixture)

	unions, err := p.FindUnions()
	require.NoError(t, err)
	u := unions[0]

	require.NoError(t, p.ResolveVariants(u))
	require.Len(t, u.Variants, 2)

	// Variants come in source order, not scope order.
	assert.Equal(t, "Click", u.Variants[0].Name())
	assert.Equal(t, "Scroll", u.Variants[1].Name())
	assert.Equal(t, "ClickPayload", u.Variants[0].Payload.Named.Obj().Name())
}

func TestResolveVariantsBadShapes(t *testing.T) {
	tests := []struct {
		name    string
		variant string
	}{
		{"NonStruct", `type Ping int

func (*Ping) isEvent() {}`},
		{"UnitStruct", `type Ping struct{}

func (*Ping) isEvent() {}`},
		{"TwoFields", `type Ping struct {
	PingPayload
	Extra int
}

type PingPayload struct{ Key string }

func (*Ping) isEvent() {}`},
		{"NamedField", `type Ping struct{ P PingPayload }

type PingPayload struct{ Key string }

func (*Ping) isEvent() {}`},
		{"NonStructPayload", `type Blob []byte

type Ping struct{ Blob }

func (*Ping) isEvent() {}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, _ := loadPackage(t, `package fixture

//unionfield:common Key: string
type Event interface{ isEvent() }

`+test.variant+"\n")

			unions, err := p.FindUnions()
			require.NoError(t, err)

			err = p.ResolveVariants(unions[0])
			require.Error(t, err)
			assert.ErrorIs(t, err, parse.ErrUnsupportedShape)
		})
	}
}

func TestResolveVariantsNone(t *testing.T) {
	p, _ := loadPackage(t, `package fixture

//unionfield:common Key: string
type Event interface{ isEvent() }
`)

	unions, err := p.FindUnions()
	require.NoError(t, err)

	err = p.ResolveVariants(unions[0])
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrUnsupportedShape)
}

func TestValidate(t *testing.T) {
	accs, err := resolve(t, eventFixture)
	require.NoError(t, err)
	require.Len(t, accs, 3)

	assert.Equal(t, "Key", accs[0].Name)
	assert.Equal(t, parse.KindRead, accs[0].Kind)
	assert.Equal(t, "Count", accs[1].Name)
	assert.Equal(t, parse.KindRead, accs[1].Kind)
	assert.Equal(t, "CountMut", accs[2].Name)
	assert.Equal(t, parse.KindMut, accs[2].Kind)

	for _, acc := range accs {
		assert.Equal(t, parse.CoerceNone, acc.Coerce)
	}
}

func TestValidateOwnExpansion(t *testing.T) {
	accs, err := resolve(t, `package fixture

//unionfield:common own Key: string
type Event interface{ isEvent() }

type ClickPayload struct{ Key string }

type Click struct{ ClickPayload }

func (*Click) isEvent() {}
`)
	require.NoError(t, err)
	require.Len(t, accs, 3)

	assert.Equal(t, "Key", accs[0].Name)
	assert.Equal(t, "KeyMut", accs[1].Name)
	assert.Equal(t, "IntoKey", accs[2].Name)
	assert.Equal(t, parse.KindOwn, accs[2].Kind)
}

func TestValidateRenamedSingles(t *testing.T) {
	accs, err := resolve(t, `package fixture

//unionfield:common Key as K: string
//unionfield:common mut_only Key as KMut: string
//unionfield:common own_only Key as IntoK: string
type Event interface{ isEvent() }

type ClickPayload struct{ Key string }

type Click struct{ ClickPayload }

func (*Click) isEvent() {}
`)
	require.NoError(t, err)
	require.Len(t, accs, 3)

	assert.Equal(t, "K", accs[0].Name)
	assert.Equal(t, parse.KindRead, accs[0].Kind)
	assert.Equal(t, "KMut", accs[1].Name)
	assert.Equal(t, parse.KindMut, accs[1].Kind)
	assert.Equal(t, "IntoK", accs[2].Name)
	assert.Equal(t, parse.KindOwn, accs[2].Kind)
}

func TestValidateTwoReadsSameField(t *testing.T) {
	// Same field twice is fine as long as the accessor names differ.
	accs, err := resolve(t, `package fixture

//unionfield:common Key: string
//unionfield:common Key as GetKey: string
type Event interface{ isEvent() }

type ClickPayload struct{ Key string }

type Click struct{ ClickPayload }

func (*Click) isEvent() {}
`)
	require.NoError(t, err)
	require.Len(t, accs, 2)

	assert.Equal(t, "Key", accs[0].Name)
	assert.Equal(t, "GetKey", accs[1].Name)
	assert.Equal(t, accs[0].Field, accs[1].Field)
}

func TestValidateMissingField(t *testing.T) {
	_, err := resolve(t, `package fixture

//unionfield:common Key: string
type Event interface{ isEvent() }

type ClickPayload struct{ Key string }

type ScrollPayload struct{ Delta int }

type Click struct{ ClickPayload }

func (*Click) isEvent() {}

type Scroll struct{ ScrollPayload }

func (*Scroll) isEvent() {}
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrMissingField)
}

func TestValidateTypeMismatch(t *testing.T) {
	_, err := resolve(t, `package fixture

//unionfield:common Count: int
type Event interface{ isEvent() }

type ClickPayload struct{ Count int }

type ScrollPayload struct{ Count int64 }

type Click struct{ ClickPayload }

func (*Click) isEvent() {}

type Scroll struct{ ScrollPayload }

func (*Scroll) isEvent() {}
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrTypeMismatch)
}

func TestValidateDeclaredTypeMismatch(t *testing.T) {
	_, err := resolve(t, `package fixture

//unionfield:common Count: int64
type Event interface{ isEvent() }

type ClickPayload struct{ Count int }

type Click struct{ ClickPayload }

func (*Click) isEvent() {}
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrTypeMismatch)
}

func TestValidateBufferView(t *testing.T) {
	accs, err := resolve(t, `package fixture

import "bytes"

//unionfield:common mut Body: []byte
type Record interface{ isRecord() }

type NotePayload struct{ Body bytes.Buffer }

type Note struct{ NotePayload }

func (*Note) isRecord() {}
`)
	require.NoError(t, err)
	require.Len(t, accs, 2)

	assert.Equal(t, parse.CoerceBufferBytes, accs[0].Coerce)
	assert.Equal(t, parse.CoerceBufferBytes, accs[1].Coerce)
	assert.Equal(t, "[]byte", accs[0].Declared)
}

func TestValidateBuilderView(t *testing.T) {
	accs, err := resolve(t, `package fixture

import "strings"

//unionfield:common Title: string
type Record interface{ isRecord() }

type NotePayload struct{ Title strings.Builder }

type Note struct{ NotePayload }

func (*Note) isRecord() {}
`)
	require.NoError(t, err)
	require.Len(t, accs, 1)
	assert.Equal(t, parse.CoerceBuilderString, accs[0].Coerce)
}

func TestValidateBuilderViewNotMutable(t *testing.T) {
	_, err := resolve(t, `package fixture

import "strings"

//unionfield:common mut Title: string
type Record interface{ isRecord() }

type NotePayload struct{ Title strings.Builder }

type Note struct{ NotePayload }

func (*Note) isRecord() {}
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrTypeMismatch)
}

func TestValidateOwnNeverCoerces(t *testing.T) {
	_, err := resolve(t, `package fixture

import "bytes"

//unionfield:common own_only Body: []byte
type Record interface{ isRecord() }

type NotePayload struct{ Body bytes.Buffer }

type Note struct{ NotePayload }

func (*Note) isRecord() {}
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrTypeMismatch)
}

func TestValidateDuplicateName(t *testing.T) {
	_, err := resolve(t, `package fixture

//unionfield:common Key: string
//unionfield:common own_only Tag as Key: string
type Event interface{ isEvent() }

type ClickPayload struct {
	Key string
	Tag string
}

type Click struct{ ClickPayload }

func (*Click) isEvent() {}
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrDuplicateName)
}

func TestValidateScopeCollision(t *testing.T) {
	_, err := resolve(t, `package fixture

//unionfield:common Key: string
type Event interface{ isEvent() }

type ClickPayload struct{ Key string }

type Click struct{ ClickPayload }

func (*Click) isEvent() {}

// Key is already taken in the package scope.
func Key() {}
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrDuplicateName)
}

func TestValidateAcrossUnions(t *testing.T) {
	p, pkg := loadPackage(t, `package fixture

//unionfield:common Key: string
type Event interface{ isEvent() }

//unionfield:common Key: string
type Frame interface{ isFrame() }

type ClickPayload struct{ Key string }

type Click struct{ ClickPayload }

func (*Click) isEvent() {}

type HeaderPayload struct{ Key string }

type Header struct{ HeaderPayload }

func (*Header) isFrame() {}
`)

	unions, err := p.FindUnions()
	require.NoError(t, err)
	require.Len(t, unions, 2)

	ns := codefmt.NewNS(pkg.Types.Scope())

	require.NoError(t, p.ResolveVariants(unions[0]))
	_, err = p.Validate(unions[0], ns)
	require.NoError(t, err)

	// The second union wants the same accessor name in the same package.
	require.NoError(t, p.ResolveVariants(unions[1]))
	_, err = p.Validate(unions[1], ns)
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrDuplicateName)
}
