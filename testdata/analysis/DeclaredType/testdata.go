package testdata

import "bytes"

// Chunk is a slice of a transfer.
//
//unionfield:common Seq: int64
//unionfield:common own Buf: []byte
type Chunk interface{ isChunk() } // want `type mismatch: field Seq of union Chunk is int32, and int64 is not a recognized view of it` `type mismatch: owning accessor for field Buf must declare its true type bytes\.Buffer, not \[\]byte`

type DataPayload struct {
	Seq int32
	Buf bytes.Buffer
}

type Data struct{ DataPayload }

func (*Data) isChunk() {}
