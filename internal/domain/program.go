package domain

import "context"

// ProgramService defines the read side of the public program API.
type ProgramService interface {
	Days() []ConferenceDay
	DaySchedule(ctx context.Context, day string) (*DayScheduleView, error)
	ListSymposiums(ctx context.Context) ([]*SymposiumWithSessions, error)
	GetPage(ctx context.Context, slug string) (*Page, error)
}

// ProgramAdminService defines the business logic of the back office: CRUD for
// symposiums, sessions, presentations and pages, plus bulk feed import.
type ProgramAdminService interface {
	CreateSymposium(ctx context.Context, s *Symposium) error
	UpdateSymposium(ctx context.Context, s *Symposium) error
	DeleteSymposium(ctx context.Context, id string) error
	ListSymposiums(ctx context.Context) ([]*Symposium, error)

	CreateSession(ctx context.Context, s *Session) error
	UpdateSession(ctx context.Context, s *Session) error
	DeleteSession(ctx context.Context, id string) error
	ListSessions(ctx context.Context) ([]*Session, error)
	ListRooms(ctx context.Context) ([]*Room, error)

	CreatePresentation(ctx context.Context, p *Presentation) error
	UpdatePresentation(ctx context.Context, p *Presentation) error
	DeletePresentation(ctx context.Context, id string) error
	ListPresentations(ctx context.Context, sessionID string, params PaginationParams) ([]*Presentation, int, error)

	UpsertPage(ctx context.Context, page *Page) error
	ListPages(ctx context.Context) ([]*Page, error)

	ImportProgram(ctx context.Context, feedURL string) error
}
