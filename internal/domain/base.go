package domain

import (
	"time"
)

type Event interface {
	Type() string
	PublishedAt() time.Time
}

type Aggregate struct {
	events []Event
}

func (a *Aggregate) PopEvents() []Event {
	events := a.events
	a.events = make([]Event, 0)
	return events
}

func (a *Aggregate) PushEvent(e Event) {
	a.events = append(a.events, e)
}
