package postgres

import (
	"context"
	"database/sql"

	"congressprogram/internal/domain"

	"github.com/lib/pq"
)

type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &SessionRepository{
		DB: db,
	}
}

// sessionColumns is the column list shared by session reads. Nullable FKs and
// the day date are normalized to strings so scans stay flat.
const sessionColumns = `
	s.id, COALESCE(s.symposium_id::text, ''), COALESCE(s.room_id::text, ''), s.session_number,
	to_char(s.day, 'YYYY-MM-DD'), s.start_time, s.end_time,
	s.title, s.event_type, s.notes_es, s.notes_en, s.speakers, s.room, s.description,
	s.created_at, s.updated_at`

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (symposium_id, room_id, session_number, day, start_time, end_time, title, event_type, notes_es, notes_en, speakers, room, description, created_at, updated_at)
		VALUES (NULLIF($1, '')::uuid, NULLIF($2, '')::uuid, $3, $4::date, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.SymposiumID, s.RoomID, s.SessionNumber, s.Day, s.StartTime, s.EndTime,
		s.Title, s.EventType, s.NotesES, s.NotesEN, s.Speakers, s.Room, s.Description,
		s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *SessionRepository) Update(ctx context.Context, s *domain.Session) error {
	query := `
		UPDATE sessions
		SET symposium_id = NULLIF($2, '')::uuid, room_id = NULLIF($3, '')::uuid, session_number = $4,
			day = $5::date, start_time = $6, end_time = $7, title = $8, event_type = $9,
			notes_es = $10, notes_en = $11, speakers = $12, room = $13, description = $14, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		s.ID, s.SymposiumID, s.RoomID, s.SessionNumber, s.Day, s.StartTime, s.EndTime,
		s.Title, s.EventType, s.NotesES, s.NotesEN, s.Speakers, s.Room, s.Description,
	).Scan(&s.UpdatedAt)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	return err
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
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

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT` + sessionColumns + `
		FROM sessions s
		WHERE s.id = $1
	`
	s := &domain.Session{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.SymposiumID, &s.RoomID, &s.SessionNumber,
		&s.Day, &s.StartTime, &s.EndTime,
		&s.Title, &s.EventType, &s.NotesES, &s.NotesEN, &s.Speakers, &s.Room, &s.Description,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListAll returns every session ordered by day then start time, with the
// linked symposium (number, titles, coordinators) and room name attached when
// present.
func (r *SessionRepository) ListAll(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT` + sessionColumns + `,
		COALESCE(sym.number, 0), COALESCE(sym.title_es, ''), COALESCE(sym.title_en, ''), COALESCE(sym.coordinators, '{}'),
		COALESCE(rm.name, '')
		FROM sessions s
		LEFT JOIN symposiums sym ON sym.id = s.symposium_id
		LEFT JOIN rooms rm ON rm.id = s.room_id
		ORDER BY s.day, s.start_time, s.session_number
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Session
	for rows.Next() {
		s := &domain.Session{}
		var symNumber int
		var symTitleES, symTitleEN string
		var coordinators []string
		if err := rows.Scan(
			&s.ID, &s.SymposiumID, &s.RoomID, &s.SessionNumber,
			&s.Day, &s.StartTime, &s.EndTime,
			&s.Title, &s.EventType, &s.NotesES, &s.NotesEN, &s.Speakers, &s.Room, &s.Description,
			&s.CreatedAt, &s.UpdatedAt,
			&symNumber, &symTitleES, &symTitleEN, pq.Array(&coordinators),
			&s.RoomName,
		); err != nil {
			return nil, err
		}
		if s.SymposiumID != "" {
			s.Symposium = &domain.Symposium{
				ID:           s.SymposiumID,
				Number:       symNumber,
				TitleES:      symTitleES,
				TitleEN:      symTitleEN,
				Coordinators: coordinators,
			}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SessionRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions`)
	return err
}
