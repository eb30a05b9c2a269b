package domain

import (
	"context"
	"time"
)

// Room represents a physical room at the congress venue
type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRoom returns a new Room with the given fields. ID is typically set by the repository on create.
func NewRoom(name string, createdAt, updatedAt time.Time) *Room {
	return &Room{
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Session represents a scheduled block of congress activity. Day is an ISO
// date (YYYY-MM-DD); StartTime and EndTime are local HH:MM strings and may be
// empty for unscheduled entries. Most optional fields use "" for absent.
//
// Title, EventType, Speakers and Room are editor overrides: when empty, the
// schedule projection falls back to the linked symposium/room data.
type Session struct {
	ID            string    `json:"id"`
	SymposiumID   string    `json:"symposium_id,omitempty"`
	RoomID        string    `json:"room_id,omitempty"`
	SessionNumber int       `json:"session_number"`
	Day           string    `json:"day"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Title         string    `json:"title,omitempty"`
	EventType     string    `json:"event_type,omitempty"`
	NotesES       string    `json:"notes_es,omitempty"`
	NotesEN       string    `json:"notes_en,omitempty"`
	Speakers      string    `json:"speakers,omitempty"`
	Room          string    `json:"room,omitempty"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Populated by joined reads; never written back.
	Symposium *Symposium `json:"symposium,omitempty"`
	RoomName  string     `json:"room_name,omitempty"`
}

// NewSession returns a new Session with the given fields. ID is typically set by the repository on create.
func NewSession(symposiumID, roomID string, sessionNumber int, day, startTime, endTime string, createdAt, updatedAt time.Time) *Session {
	return &Session{
		SymposiumID:   symposiumID,
		RoomID:        roomID,
		SessionNumber: sessionNumber,
		Day:           day,
		StartTime:     startTime,
		EndTime:       endTime,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

// SessionRepository defines the interface for session storage. ListAll returns
// sessions with Symposium and RoomName populated, ordered by day then start time.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	Update(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Session, error)
	ListAll(ctx context.Context) ([]*Session, error)
	DeleteAll(ctx context.Context) error
}

// RoomRepository defines the interface for room storage
type RoomRepository interface {
	Upsert(ctx context.Context, room *Room) error
	List(ctx context.Context) ([]*Room, error)
	DeleteAll(ctx context.Context) error
}
