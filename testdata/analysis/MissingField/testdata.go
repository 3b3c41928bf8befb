package testdata

// Event is an input event.
//
//unionfield:common Key: string
type Event interface{ isEvent() }

type ClickPayload struct {
	Key  string
	X, Y int
}

type ScrollPayload struct {
	Delta int
}

type Click struct{ ClickPayload }

func (*Click) isEvent() {}

type Scroll struct{ ScrollPayload } // want `missing field: variant Scroll payload ScrollPayload has no field Key`

func (*Scroll) isEvent() {}
