package main

// Event is an input event.
//
//unionfield:common mut Key as K: string
type Event interface{ isEvent() }

type ClickPayload struct{ Key string }

type Click struct{ ClickPayload }

func (*Click) isEvent() {}

func main() {}
