package testdata

// Msg is a queue message.
//
//unionfield:common Key: string
//unionfield:common own_only Tag as Key: string
//unionfield:common Seq as Send: uint64
type Msg interface{ isMsg() } // want `duplicate accessor name: directives "Key: string" and "own_only Tag as Key: string" both produce an accessor named Key` `duplicate accessor name: accessor Send from directive "Seq as Send: uint64" collides with an existing name in the package`

type NotePayload struct {
	Key string
	Tag string
	Seq uint64
}

type Note struct{ NotePayload }

func (*Note) isMsg() {}

// Send delivers a message.
func Send() {}
