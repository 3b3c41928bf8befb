package main

import (
	"bytes"
	"fmt"
	"strings"
)

// Record is a log record.
//
//unionfield:common mut Body: []byte
//unionfield:common Title: string
type Record interface{ isRecord() }

type AppPayload struct {
	Body  bytes.Buffer
	Title strings.Builder
	Level int
}

type SysPayload struct {
	Body  bytes.Buffer
	Title strings.Builder
	Unit  string
}

type App struct{ AppPayload }

func (*App) isRecord() {}

type Sys struct{ SysPayload }

func (*Sys) isRecord() {}

func main() {
	app := &App{}
	app.Body.WriteString("user logged in")
	app.Title.WriteString("auth")

	sys := &Sys{}
	sys.Body.WriteString("disk almost full")
	sys.Title.WriteString("storage")

	for _, r := range []Record{app, sys} {
		body := BodyMut(r)
		body[0] = body[0] - 'a' + 'A'
		fmt.Printf("%s: %s\n", Title(r), Body(r))
	}
}
