package testdata

// Frame is a wire frame.
//
//unionfield:common Code: int
type Frame interface{ isFrame() }

type HeaderPayload struct{ Code int }

type Header struct{ HeaderPayload }

func (*Header) isFrame() {}

type Ping int // want `unsupported variant shape: variant Ping of union Frame must be a struct wrapping one payload struct, not int`

func (*Ping) isFrame() {}

type Trailer struct{} // want `unsupported variant shape: variant Trailer of union Frame is a unit struct`

func (*Trailer) isFrame() {}

type Raw struct { // want `unsupported variant shape: variant Raw of union Frame has 2 fields`
	Code int
	Body []byte
}

func (*Raw) isFrame() {}

type Reset struct { // want `unsupported variant shape: variant Reset of union Frame declares named field Payload`
	Payload HeaderPayload
}

func (*Reset) isFrame() {}

type Blob []byte

type Data struct{ Blob } // want `unsupported variant shape: variant Data of union Frame embeds Blob; the payload must be a named struct`

func (*Data) isFrame() {}

//unionfield:common ID: int
type Orphan interface{ isOrphan() } // want `unsupported variant shape: union Orphan has no variant implementations in this package`

//unionfield:common ID: int
type Marker interface{} // want `unsupported variant shape: union interface Marker must declare at least one method`

//unionfield:common ID: int
type Record struct{ ID int } // want `unsupported variant shape: Record is not an interface`
