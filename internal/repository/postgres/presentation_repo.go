package postgres

import (
	"context"
	"database/sql"

	"congressprogram/internal/domain"
)

type PresentationRepository struct {
	DB *sql.DB
}

func NewPresentationRepository(db *sql.DB) domain.PresentationRepository {
	return &PresentationRepository{
		DB: db,
	}
}

const presentationColumns = `
	id, session_id, title_es, title_en, abstract_es, abstract_en,
	author_name, author_institution, author_email, author_country,
	duration_minutes, presentation_order, kind, created_at, updated_at`

func (r *PresentationRepository) Create(ctx context.Context, p *domain.Presentation) error {
	query := `
		INSERT INTO presentations (session_id, title_es, title_en, abstract_es, abstract_en, author_name, author_institution, author_email, author_country, duration_minutes, presentation_order, kind, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		p.SessionID, p.TitleES, p.TitleEN, p.AbstractES, p.AbstractEN,
		p.AuthorName, p.AuthorInstitution, p.AuthorEmail, p.AuthorCountry,
		p.DurationMinutes, p.PresentationOrder, p.Kind, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

func (r *PresentationRepository) Update(ctx context.Context, p *domain.Presentation) error {
	query := `
		UPDATE presentations
		SET session_id = $2, title_es = $3, title_en = $4, abstract_es = $5, abstract_en = $6,
			author_name = $7, author_institution = $8, author_email = $9, author_country = $10,
			duration_minutes = $11, presentation_order = $12, kind = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		p.ID, p.SessionID, p.TitleES, p.TitleEN, p.AbstractES, p.AbstractEN,
		p.AuthorName, p.AuthorInstitution, p.AuthorEmail, p.AuthorCountry,
		p.DurationMinutes, p.PresentationOrder, p.Kind,
	).Scan(&p.UpdatedAt)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	return err
}

func (r *PresentationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM presentations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PresentationRepository) GetByID(ctx context.Context, id string) (*domain.Presentation, error) {
	query := `SELECT` + presentationColumns + ` FROM presentations WHERE id = $1`
	p := &domain.Presentation{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.SessionID, &p.TitleES, &p.TitleEN, &p.AbstractES, &p.AbstractEN,
		&p.AuthorName, &p.AuthorInstitution, &p.AuthorEmail, &p.AuthorCountry,
		&p.DurationMinutes, &p.PresentationOrder, &p.Kind, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns a page of presentations ordered by creation time (newest
// first), filtered by session when sessionID is non-empty, plus the total
// count for the filter.
func (r *PresentationRepository) List(ctx context.Context, sessionID string, params domain.PaginationParams) ([]*domain.Presentation, int, error) {
	countQuery := `SELECT COUNT(*) FROM presentations WHERE ($1 = '' OR session_id = $1::uuid)`
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, sessionID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT` + presentationColumns + `
		FROM presentations
		WHERE ($1 = '' OR session_id = $1::uuid)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, sessionID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var out []*domain.Presentation
	for rows.Next() {
		p := &domain.Presentation{}
		if err := rows.Scan(
			&p.ID, &p.SessionID, &p.TitleES, &p.TitleEN, &p.AbstractES, &p.AbstractEN,
			&p.AuthorName, &p.AuthorInstitution, &p.AuthorEmail, &p.AuthorCountry,
			&p.DurationMinutes, &p.PresentationOrder, &p.Kind, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}
