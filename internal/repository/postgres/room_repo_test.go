package postgres

import (
	"context"
	"testing"
	"time"

	"congressprogram/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestRoomRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO rooms`).
		WithArgs("Aula 1", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("room-uuid-1"))

	repo := NewRoomRepository(db)
	room := &domain.Room{Name: "Aula 1", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Upsert(ctx, room))
	require.Equal(t, "room-uuid-1", room.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_DeleteAll(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM rooms`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := NewRoomRepository(db)
	require.NoError(t, repo.DeleteAll(ctx))
	require.NoError(t, mock.ExpectationsWereMet())
}
