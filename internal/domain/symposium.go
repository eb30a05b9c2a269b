package domain

import (
	"context"
	"time"
)

// Symposium represents a thematic track of the congress. Titles and
// descriptions are bilingual; the English fields may be empty.
type Symposium struct {
	ID            string    `json:"id"`
	Number        int       `json:"number"`
	TitleES       string    `json:"title_es"`
	TitleEN       string    `json:"title_en"`
	DescriptionES string    `json:"description_es"`
	DescriptionEN string    `json:"description_en"`
	Coordinators  []string  `json:"coordinators"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewSymposium returns a new Symposium with the given fields. ID is typically set by the repository on create.
func NewSymposium(number int, titleES, titleEN, descriptionES, descriptionEN string, coordinators []string, createdAt, updatedAt time.Time) *Symposium {
	return &Symposium{
		Number:        number,
		TitleES:       titleES,
		TitleEN:       titleEN,
		DescriptionES: descriptionES,
		DescriptionEN: descriptionEN,
		Coordinators:  coordinators,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

// SymposiumWithSessions pairs a symposium with its scheduled sessions,
// as shown on the public program listing.
type SymposiumWithSessions struct {
	Symposium *Symposium `json:"symposium"`
	Sessions  []*Session `json:"sessions"`
}

// SymposiumRepository defines the interface for symposium storage
type SymposiumRepository interface {
	Create(ctx context.Context, s *Symposium) error
	Update(ctx context.Context, s *Symposium) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Symposium, error)
	List(ctx context.Context) ([]*Symposium, error)
	DeleteAll(ctx context.Context) error
}
