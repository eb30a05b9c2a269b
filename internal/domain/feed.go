package domain

import "context"

// FeedDocument is the published program feed this app can bulk-import.
// Symposiums are matched to sessions by number; rooms by name.
type FeedDocument struct {
	Symposiums []FeedSymposium `json:"symposiums"`
	Sessions   []FeedSession   `json:"sessions"`
}

// FeedSymposium is a symposium entry in the program feed.
type FeedSymposium struct {
	Number        int      `json:"number"`
	TitleES       string   `json:"title_es"`
	TitleEN       string   `json:"title_en"`
	DescriptionES string   `json:"description_es"`
	DescriptionEN string   `json:"description_en"`
	Coordinators  []string `json:"coordinators"`
}

// FeedSession is a session entry in the program feed. SymposiumNumber 0 means
// the session belongs to no symposium (plenaries, breaks, special events).
type FeedSession struct {
	SymposiumNumber int    `json:"symposium_number"`
	RoomName        string `json:"room_name"`
	SessionNumber   int    `json:"session_number"`
	Day             string `json:"day"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Title           string `json:"title"`
	EventType       string `json:"event_type"`
	NotesES         string `json:"notes_es"`
	NotesEN         string `json:"notes_en"`
	Speakers        string `json:"speakers"`
	Description     string `json:"description"`
}

// ProgramFeedFetcher fetches a program feed document from a URL.
type ProgramFeedFetcher interface {
	Fetch(ctx context.Context, url string) (FeedDocument, error)
}
