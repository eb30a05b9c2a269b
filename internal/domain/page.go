package domain

import (
	"context"
	"time"
)

// Page holds the bilingual content of a static informational page
// (call for participation, committees, fees, venue).
type Page struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	TitleES   string    `json:"title_es"`
	TitleEN   string    `json:"title_en"`
	BodyES    string    `json:"body_es"`
	BodyEN    string    `json:"body_en"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageRepository defines the interface for page content storage
type PageRepository interface {
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	Upsert(ctx context.Context, page *Page) error
	List(ctx context.Context) ([]*Page, error)
}
