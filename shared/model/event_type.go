package model

import "bestevents/shared/enum"

// EventType is shared by client bookings and events.
type EventType string

const (
	EventTypeWedding     EventType = "wedding"
	EventTypeBirthday    EventType = "birthday"
	EventTypeThemedParty EventType = "themed_party"
	EventTypeGraduation  EventType = "graduation"
	EventTypeCorporate   EventType = "corporate"
	EventTypeOther       EventType = "other"
)

var EventTypes = enum.NewTable(
	enum.Member[EventType]{Code: EventTypeWedding, Label: "Wedding"},
	enum.Member[EventType]{Code: EventTypeBirthday, Label: "Birthday"},
	enum.Member[EventType]{Code: EventTypeThemedParty, Label: "Themed Party"},
	enum.Member[EventType]{Code: EventTypeGraduation, Label: "Graduation"},
	enum.Member[EventType]{Code: EventTypeCorporate, Label: "Corporate"},
	enum.Member[EventType]{Code: EventTypeOther, Label: "Other"},
)

func (e EventType) IsValid() bool {
	return EventTypes.Contains(e)
}

func (e EventType) Label() string {
	return EventTypes.Label(e)
}

// UnmarshalText accepts a code or a display label.
func (e *EventType) UnmarshalText(text []byte) error {
	*e, _ = EventTypes.Parse(string(text))

	return nil
}
