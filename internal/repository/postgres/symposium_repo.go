package postgres

import (
	"context"
	"database/sql"

	"congressprogram/internal/domain"

	"github.com/lib/pq"
)

type SymposiumRepository struct {
	DB *sql.DB
}

func NewSymposiumRepository(db *sql.DB) domain.SymposiumRepository {
	return &SymposiumRepository{
		DB: db,
	}
}

func (r *SymposiumRepository) Create(ctx context.Context, s *domain.Symposium) error {
	query := `
		INSERT INTO symposiums (number, title_es, title_en, description_es, description_en, coordinators, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.Number, s.TitleES, s.TitleEN, s.DescriptionES, s.DescriptionEN,
		pq.Array(s.Coordinators), s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *SymposiumRepository) Update(ctx context.Context, s *domain.Symposium) error {
	query := `
		UPDATE symposiums
		SET number = $2, title_es = $3, title_en = $4, description_es = $5, description_en = $6, coordinators = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		s.ID, s.Number, s.TitleES, s.TitleEN, s.DescriptionES, s.DescriptionEN, pq.Array(s.Coordinators),
	).Scan(&s.UpdatedAt)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	return err
}

func (r *SymposiumRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM symposiums WHERE id = $1`, id)
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

func (r *SymposiumRepository) GetByID(ctx context.Context, id string) (*domain.Symposium, error) {
	query := `
		SELECT id, number, title_es, title_en, description_es, description_en, coordinators, created_at, updated_at
		FROM symposiums
		WHERE id = $1
	`
	s := &domain.Symposium{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Number, &s.TitleES, &s.TitleEN, &s.DescriptionES, &s.DescriptionEN,
		pq.Array(&s.Coordinators), &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *SymposiumRepository) List(ctx context.Context) ([]*domain.Symposium, error) {
	query := `
		SELECT id, number, title_es, title_en, description_es, description_en, coordinators, created_at, updated_at
		FROM symposiums
		ORDER BY number
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Symposium
	for rows.Next() {
		s := &domain.Symposium{}
		if err := rows.Scan(
			&s.ID, &s.Number, &s.TitleES, &s.TitleEN, &s.DescriptionES, &s.DescriptionEN,
			pq.Array(&s.Coordinators), &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SymposiumRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM symposiums`)
	return err
}
