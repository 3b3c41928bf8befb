// An audit-trail HTTP service. Audit entries form a union: every entry kind
// has its own payload, but all payloads share the actor, timestamp, and tag
// list. The shared fields are read and mutated through generated accessors
// instead of per-handler type switches.
//
// Regenerate the accessors after changing the union:
//
//	go run github.com/eliduvid/unionfield/cmd/unionfield
package main

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// AuditEvent is one entry of the audit trail.
//
//unionfield:common Actor: string
//unionfield:common At: time.Time
//unionfield:common mut Tags: []string
type AuditEvent interface{ isAuditEvent() }

type LoginEvent struct {
	Actor string
	At    time.Time
	Tags  []string
	IP    string
}

type UploadEvent struct {
	Actor string
	At    time.Time
	Tags  []string
	Name  string
	Size  int64
}

type PurgeEvent struct {
	Actor string
	At    time.Time
	Tags  []string
	Count int
}

type Login struct{ LoginEvent }

func (*Login) isAuditEvent() {}

type Upload struct{ UploadEvent }

func (*Upload) isAuditEvent() {}

type Purge struct{ PurgeEvent }

func (*Purge) isAuditEvent() {}

// trail is the in-memory audit log.
type trail struct {
	mu     sync.Mutex
	events []AuditEvent
}

func (tr *trail) add(ev AuditEvent) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.events = append(tr.events, ev)
}

// entry is the wire form of one audit event, built from the shared fields.
type entry struct {
	Actor string    `json:"actor"`
	At    time.Time `json:"at"`
	Tags  []string  `json:"tags"`
}

func (tr *trail) list(c echo.Context) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	entries := make([]entry, 0, len(tr.events))
	for _, ev := range tr.events {
		entries = append(entries, entry{
			Actor: Actor(ev),
			At:    At(ev),
			Tags:  Tags(ev),
		})
	}
	return c.JSON(http.StatusOK, entries)
}

// tag appends a tag to every event of the given actor, through the mutable
// accessor.
func (tr *trail) tag(c echo.Context) error {
	var req struct {
		Tag string `json:"tag"`
	}
	if err := c.Bind(&req); err != nil {
		return err
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()

	n := 0
	for _, ev := range tr.events {
		if Actor(ev) != c.Param("actor") {
			continue
		}
		tags := TagsMut(ev)
		*tags = append(*tags, req.Tag)
		n++
	}
	return c.JSON(http.StatusOK, map[string]int{"tagged": n})
}

func (tr *trail) login(c echo.Context) error {
	var req struct {
		Actor string `json:"actor"`
		IP    string `json:"ip"`
	}
	if err := c.Bind(&req); err != nil {
		return err
	}

	tr.add(&Login{LoginEvent{Actor: req.Actor, At: time.Now(), IP: req.IP}})
	return c.NoContent(http.StatusCreated)
}

func (tr *trail) upload(c echo.Context) error {
	var req struct {
		Actor string `json:"actor"`
		Name  string `json:"name"`
		Size  int64  `json:"size"`
	}
	if err := c.Bind(&req); err != nil {
		return err
	}

	tr.add(&Upload{UploadEvent{Actor: req.Actor, At: time.Now(), Name: req.Name, Size: req.Size}})
	return c.NoContent(http.StatusCreated)
}

func main() {
	tr := &trail{}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/events", tr.list)
	e.POST("/events/login", tr.login)
	e.POST("/events/upload", tr.upload)
	e.POST("/actors/:actor/tags", tr.tag)

	e.Logger.Fatal(e.Start(":8080"))
}
