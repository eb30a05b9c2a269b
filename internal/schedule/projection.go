// Package schedule turns a flat session list into a time-organized,
// conflict-aware day agenda. Every function here is pure: no I/O, no state,
// inputs are never mutated, and malformed values degrade to fixed fallbacks
// instead of errors so the program page always renders.
package schedule

import (
	"sort"
	"strconv"
	"strings"

	"congressprogram/internal/domain"
)

// Presentation constants for the proportional block extent.
const (
	// DefaultExtent is returned when either time bound is missing.
	DefaultExtent = 80
	// MinExtent keeps short sessions legible.
	MinExtent = 60
	// ExtentPerMinute scales duration to visual extent.
	ExtentPerMinute = 1.5
)

// keywordRules is the ordered heuristic table for classifying a session from
// its Spanish notes. First match wins; evaluated only when no explicit type is
// set. The vocabulary mixes Spanish and Portuguese because session notes do.
var keywordRules = []struct {
	eventType domain.EventType
	keywords  []string
}{
	{domain.EventBreak, []string{"pausa", "café", "comida", "almoco"}},
	{domain.EventWelcome, []string{"bienvenida", "recepção"}},
	{domain.EventPanel, []string{"asamblea", "assembleia", "cena"}},
	{domain.EventPlenary, []string{"keynote", "memorial lecture"}},
	{domain.EventWorkshop, []string{"taller", "workshop"}},
}

// Classify returns the event type of a session. An explicit editor-set type
// always wins; otherwise the Spanish notes are matched against keywordRules.
// Total and deterministic; unknown text falls through to EventSymposium.
func Classify(s *domain.Session) domain.EventType {
	if s.EventType != "" {
		return domain.EventType(s.EventType)
	}
	notes := strings.ToLower(s.NotesES)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(notes, kw) {
				return rule.eventType
			}
		}
	}
	return domain.EventSymposium
}

// DurationMinutes returns endTime minus startTime in minutes. Times are local
// HH:MM strings on the same day. A missing bound yields 0; an end before the
// start yields a negative value (no guard, matching the rendered program).
func DurationMinutes(startTime, endTime string) int {
	if startTime == "" || endTime == "" {
		return 0
	}
	return minutesSinceMidnight(endTime) - minutesSinceMidnight(startTime)
}

// minutesSinceMidnight parses "HH:MM" leniently; unparseable components count
// as zero.
func minutesSinceMidnight(t string) int {
	parts := strings.SplitN(t, ":", 3)
	if len(parts) < 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// BlockExtent derives the proportional visual extent of a session block from
// its duration: max(MinExtent, minutes × ExtentPerMinute). Missing bounds
// yield DefaultExtent so the block never collapses.
func BlockExtent(startTime, endTime string) float64 {
	if startTime == "" || endTime == "" {
		return DefaultExtent
	}
	extent := float64(DurationMinutes(startTime, endTime)) * ExtentPerMinute
	if extent < MinExtent {
		return MinExtent
	}
	return extent
}

// SelectDay filters sessions to the given ISO day (exact string match, no
// timezone handling), groups them by exact start time, and returns the groups
// sorted ascending. Start times are zero-padded HH:MM so lexicographic order
// is chronological order.
//
// A group is full width when it holds a single session or when its first
// session classifies as break or welcome. Only the first session is consulted
// for the type rule.
func SelectDay(sessions []*domain.Session, day string) domain.DaySchedule {
	byStart := make(map[string][]*domain.Session)
	var starts []string
	for _, s := range sessions {
		if s.Day != day {
			continue
		}
		if _, ok := byStart[s.StartTime]; !ok {
			starts = append(starts, s.StartTime)
		}
		byStart[s.StartTime] = append(byStart[s.StartTime], s)
	}
	sort.Strings(starts)

	out := domain.DaySchedule{
		Date:      day,
		TimeSlots: make([]domain.TimeSlotGroup, 0, len(starts)),
	}
	for _, start := range starts {
		group := byStart[start]
		firstType := Classify(group[0])
		out.TimeSlots = append(out.TimeSlots, domain.TimeSlotGroup{
			StartTime:   start,
			Sessions:    group,
			IsFullWidth: len(group) == 1 || firstType == domain.EventBreak || firstType == domain.EventWelcome,
		})
	}
	return out
}

// DisplayTitle resolves a session's title for the given language ("es" or
// "en"): direct title, then the linked symposium's localized title, then the
// localized notes. English falls back to Spanish at every step. Returns ""
// when nothing is present.
func DisplayTitle(s *domain.Session, lang string) string {
	if s.Title != "" {
		return s.Title
	}
	if s.Symposium != nil {
		if lang != "en" {
			return s.Symposium.TitleES
		}
		if s.Symposium.TitleEN != "" {
			return s.Symposium.TitleEN
		}
		return s.Symposium.TitleES
	}
	if lang != "en" {
		return s.NotesES
	}
	if s.NotesEN != "" {
		return s.NotesEN
	}
	return s.NotesES
}

// RoomName resolves the room label: the free-text override, then the linked
// room's name. Returns "" when neither is set.
func RoomName(s *domain.Session) string {
	if s.Room != "" {
		return s.Room
	}
	return s.RoomName
}

// Speakers resolves the speaker line: the free-text field, then the linked
// symposium's coordinators joined with ", ". Returns "" when neither is set.
func Speakers(s *domain.Session) string {
	if s.Speakers != "" {
		return s.Speakers
	}
	if s.Symposium != nil && len(s.Symposium.Coordinators) > 0 {
		return strings.Join(s.Symposium.Coordinators, ", ")
	}
	return ""
}

// View bundles a session with all its derived display facts.
func View(s *domain.Session) *domain.SessionView {
	return &domain.SessionView{
		Session:         s,
		Type:            Classify(s),
		DurationMinutes: DurationMinutes(s.StartTime, s.EndTime),
		BlockExtent:     BlockExtent(s.StartTime, s.EndTime),
		TitleES:         DisplayTitle(s, "es"),
		TitleEN:         DisplayTitle(s, "en"),
		RoomName:        RoomName(s),
		Speakers:        Speakers(s),
	}
}
