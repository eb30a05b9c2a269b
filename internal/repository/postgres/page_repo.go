package postgres

import (
	"context"
	"database/sql"

	"congressprogram/internal/domain"
)

type PageRepository struct {
	DB *sql.DB
}

func NewPageRepository(db *sql.DB) domain.PageRepository {
	return &PageRepository{
		DB: db,
	}
}

func (r *PageRepository) GetBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	query := `
		SELECT id, slug, title_es, title_en, body_es, body_en, updated_at
		FROM pages
		WHERE slug = $1
	`
	p := &domain.Page{}
	err := r.DB.QueryRowContext(ctx, query, slug).Scan(
		&p.ID, &p.Slug, &p.TitleES, &p.TitleEN, &p.BodyES, &p.BodyEN, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PageRepository) Upsert(ctx context.Context, page *domain.Page) error {
	query := `
		INSERT INTO pages (slug, title_es, title_en, body_es, body_en, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (slug) DO UPDATE
		SET title_es = EXCLUDED.title_es, title_en = EXCLUDED.title_en,
			body_es = EXCLUDED.body_es, body_en = EXCLUDED.body_en, updated_at = NOW()
		RETURNING id, updated_at
	`
	return r.DB.QueryRowContext(ctx, query,
		page.Slug, page.TitleES, page.TitleEN, page.BodyES, page.BodyEN,
	).Scan(&page.ID, &page.UpdatedAt)
}

func (r *PageRepository) List(ctx context.Context) ([]*domain.Page, error) {
	query := `
		SELECT id, slug, title_es, title_en, body_es, body_en, updated_at
		FROM pages
		ORDER BY slug
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Page
	for rows.Next() {
		p := &domain.Page{}
		if err := rows.Scan(&p.ID, &p.Slug, &p.TitleES, &p.TitleEN, &p.BodyES, &p.BodyEN, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
