package testdata

// Stat is a cache statistics event.
//
//unionfield:common mut Count: int
type Stat interface{ isStat() }

type HitPayload struct{ Count int }

type MissPayload struct{ Count int64 }

type Hit struct{ HitPayload }

func (*Hit) isStat() {}

type Miss struct{ MissPayload } // want `type mismatch: field Count is int in variant Hit but int64 in variant Miss`

func (*Miss) isStat() {}
