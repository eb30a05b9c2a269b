package postgres

import (
	"context"
	"database/sql"

	"congressprogram/internal/domain"
)

type RoomRepository struct {
	DB *sql.DB
}

func NewRoomRepository(db *sql.DB) domain.RoomRepository {
	return &RoomRepository{
		DB: db,
	}
}

func (r *RoomRepository) Upsert(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET updated_at = EXCLUDED.updated_at
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, room.Name, room.CreatedAt, room.UpdatedAt).Scan(&room.ID)
}

func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM rooms
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var rooms []*domain.Room
	for rows.Next() {
		room := &domain.Room{}
		if err := rows.Scan(&room.ID, &room.Name, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *RoomRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM rooms`)
	return err
}
