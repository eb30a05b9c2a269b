package domain

// EventType classifies a schedule entry for rendering (color, legend, width).
type EventType string

// Known event types. EventSymposium is the default when nothing else matches.
const (
	EventSymposium EventType = "symposium"
	EventPanel     EventType = "panel"
	EventPlenary   EventType = "plenary"
	EventWelcome   EventType = "welcome"
	EventBreak     EventType = "break"
	EventWorkshop  EventType = "workshop"
)

// ValidEventType reports whether s is one of the known event type codes.
func ValidEventType(s string) bool {
	switch EventType(s) {
	case EventSymposium, EventPanel, EventPlenary, EventWelcome, EventBreak, EventWorkshop:
		return true
	}
	return false
}

// TimeSlotGroup is the set of sessions sharing an identical start time on one
// day: candidate parallel tracks. IsFullWidth marks groups the renderer draws
// as a whole-width banner (lone sessions, breaks, welcomes).
type TimeSlotGroup struct {
	StartTime   string     `json:"start_time"`
	Sessions    []*Session `json:"sessions"`
	IsFullWidth bool       `json:"is_full_width"`
}

// DaySchedule is the time-ordered agenda for one conference day. It is a pure
// derivation from the session set, recomputed per request.
type DaySchedule struct {
	Date      string          `json:"date"`
	TimeSlots []TimeSlotGroup `json:"time_slots"`
}

// ConferenceDay is one entry of the fixed congress day table with its
// localized labels.
type ConferenceDay struct {
	Date        string `json:"date"`
	LabelES     string `json:"label_es"`
	LabelEN     string `json:"label_en"`
	FullLabelES string `json:"full_label_es"`
	FullLabelEN string `json:"full_label_en"`
}

// SessionView is a session plus the derived display facts the renderer needs:
// classified type, duration, proportional block extent, and the resolved
// title/room/speakers fallback values. Empty string means absent.
type SessionView struct {
	Session         *Session  `json:"session"`
	Type            EventType `json:"type"`
	DurationMinutes int       `json:"duration_minutes"`
	BlockExtent     float64   `json:"block_extent"`
	TitleES         string    `json:"title_es"`
	TitleEN         string    `json:"title_en"`
	RoomName        string    `json:"room_name,omitempty"`
	Speakers        string    `json:"speakers,omitempty"`
}

// TimeSlotView is a TimeSlotGroup with per-session derived facts.
type TimeSlotView struct {
	StartTime   string         `json:"start_time"`
	IsFullWidth bool           `json:"is_full_width"`
	Sessions    []*SessionView `json:"sessions"`
}

// DayScheduleView is the full projection output served to the renderer.
type DayScheduleView struct {
	Date      string         `json:"date"`
	TimeSlots []TimeSlotView `json:"time_slots"`
}
