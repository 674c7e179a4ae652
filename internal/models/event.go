package models

import (
	"errors"
	"fmt"
)

var ErrUnknownEventType = errors.New("unknown event type")

type EventType string

const (
	EventWedding   EventType = "wedding"
	EventCorporate EventType = "corporate"
	EventPolitical EventType = "political"
	EventOther     EventType = "other"
)

var EventTypes = []EventType{EventWedding, EventCorporate, EventPolitical, EventOther}

func ParseEventType(s string) (EventType, error) {
	for _, t := range EventTypes {
		if string(t) == s {
			return t, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownEventType, s)
}

// Label is the capitalized name shown in the booking select.
func (t EventType) Label() string {
	switch t {
	case EventWedding:
		return "Wedding"
	case EventCorporate:
		return "Corporate"
	case EventPolitical:
		return "Political"
	case EventOther:
		return "Other"
	}
	return string(t)
}
