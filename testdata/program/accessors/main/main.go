package main

import "fmt"

// Event is an input event dispatched through the queue.
//
//unionfield:common own Key: string
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

func main() {
	events := []Event{
		&Click{ClickPayload{Key: "a", Count: 1, X: 3, Y: 4}},
		&Scroll{ScrollPayload{Key: "b", Count: 2, Delta: -1}},
	}

	for _, ev := range events {
		*KeyMut(ev) = Key(ev) + "!"
		*CountMut(ev) += 10
	}

	for _, ev := range events {
		fmt.Println(Key(ev), Count(ev), IntoKey(ev))
	}
}
