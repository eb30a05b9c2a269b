package domain

import (
	"context"
	"time"
)

// Presentation kinds accepted by the congress.
const (
	PresentationOral   = "oral"
	PresentationPoster = "poster"
	PresentationVideo  = "video"
)

// Presentation represents an accepted paper or poster assigned to a session
type Presentation struct {
	ID                string    `json:"id"`
	SessionID         string    `json:"session_id"`
	TitleES           string    `json:"title_es"`
	TitleEN           string    `json:"title_en"`
	AbstractES        string    `json:"abstract_es"`
	AbstractEN        string    `json:"abstract_en"`
	AuthorName        string    `json:"author_name"`
	AuthorInstitution string    `json:"author_institution"`
	AuthorEmail       string    `json:"author_email"`
	AuthorCountry     string    `json:"author_country"`
	DurationMinutes   int       `json:"duration_minutes"`
	PresentationOrder int       `json:"presentation_order"`
	Kind              string    `json:"kind"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewPresentation returns a new Presentation with the given fields. ID is typically set by the repository on create.
func NewPresentation(sessionID, titleES, titleEN, authorName, authorEmail, kind string, durationMinutes, order int, createdAt, updatedAt time.Time) *Presentation {
	return &Presentation{
		SessionID:         sessionID,
		TitleES:           titleES,
		TitleEN:           titleEN,
		AuthorName:        authorName,
		AuthorEmail:       authorEmail,
		Kind:              kind,
		DurationMinutes:   durationMinutes,
		PresentationOrder: order,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

// PresentationRepository defines the interface for presentation storage.
// List filters by sessionID when non-empty and returns the page plus the
// total row count for the filter.
type PresentationRepository interface {
	Create(ctx context.Context, p *Presentation) error
	Update(ctx context.Context, p *Presentation) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Presentation, error)
	List(ctx context.Context, sessionID string, params PaginationParams) ([]*Presentation, int, error)
}
