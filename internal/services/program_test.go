package services

import (
	"context"
	"testing"
	"time"

	"congressprogram/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramService_Days(t *testing.T) {
	svc := NewProgramService(newFakeSymposiumRepo(), newFakeSessionRepo(), newFakePageRepo(), time.Second)

	days := svc.Days()
	require.Len(t, days, 5)
	assert.Equal(t, "2026-09-28", days[0].Date)
	assert.Equal(t, "2026-10-02", days[4].Date)
}

func TestProgramService_DaySchedule(t *testing.T) {
	ctx := context.Background()
	sessionRepo := newFakeSessionRepo()
	svc := NewProgramService(newFakeSymposiumRepo(), sessionRepo, newFakePageRepo(), time.Second)

	sym := &domain.Symposium{ID: "sym-1", Number: 1, TitleES: "Música y exilio", Coordinators: []string{"A. Pérez"}}
	require.NoError(t, sessionRepo.Create(ctx, &domain.Session{
		SymposiumID: "sym-1", Day: "2026-09-28", StartTime: "09:00", EndTime: "11:00",
		Symposium: sym, RoomName: "Aula 1",
	}))
	require.NoError(t, sessionRepo.Create(ctx, &domain.Session{
		SymposiumID: "sym-1", Day: "2026-09-28", StartTime: "09:00", EndTime: "11:00",
		Symposium: sym, RoomName: "Aula 2",
	}))
	require.NoError(t, sessionRepo.Create(ctx, &domain.Session{
		Day: "2026-09-28", StartTime: "11:00", EndTime: "11:30", NotesES: "Pausa para café",
	}))
	require.NoError(t, sessionRepo.Create(ctx, &domain.Session{
		Day: "2026-09-29", StartTime: "09:00", EndTime: "10:00", Title: "Keynote: apertura",
	}))

	view, err := svc.DaySchedule(ctx, "2026-09-28")
	require.NoError(t, err)
	require.Equal(t, "2026-09-28", view.Date)
	require.Len(t, view.TimeSlots, 2)

	first := view.TimeSlots[0]
	assert.Equal(t, "09:00", first.StartTime)
	assert.False(t, first.IsFullWidth)
	require.Len(t, first.Sessions, 2)
	assert.Equal(t, domain.EventSymposium, first.Sessions[0].Type)
	assert.Equal(t, "Música y exilio", first.Sessions[0].TitleES)
	assert.Equal(t, 120, first.Sessions[0].DurationMinutes)
	assert.Equal(t, 180.0, first.Sessions[0].BlockExtent)

	second := view.TimeSlots[1]
	assert.Equal(t, "11:00", second.StartTime)
	assert.True(t, second.IsFullWidth)
	require.Len(t, second.Sessions, 1)
	assert.Equal(t, domain.EventBreak, second.Sessions[0].Type)
}

func TestProgramService_DaySchedule_empty_day(t *testing.T) {
	svc := NewProgramService(newFakeSymposiumRepo(), newFakeSessionRepo(), newFakePageRepo(), time.Second)

	view, err := svc.DaySchedule(context.Background(), "2026-10-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-02", view.Date)
	assert.Empty(t, view.TimeSlots)
}

func TestProgramService_ListSymposiums(t *testing.T) {
	ctx := context.Background()
	symposiumRepo := newFakeSymposiumRepo()
	sessionRepo := newFakeSessionRepo()
	svc := NewProgramService(symposiumRepo, sessionRepo, newFakePageRepo(), time.Second)

	symA := &domain.Symposium{Number: 1, TitleES: "Uno"}
	symB := &domain.Symposium{Number: 2, TitleES: "Dos"}
	require.NoError(t, symposiumRepo.Create(ctx, symA))
	require.NoError(t, symposiumRepo.Create(ctx, symB))
	require.NoError(t, sessionRepo.Create(ctx, &domain.Session{SymposiumID: symA.ID, Day: "2026-09-28"}))
	require.NoError(t, sessionRepo.Create(ctx, &domain.Session{Day: "2026-09-28"})) // unlinked

	got, err := svc.ListSymposiums(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0].Sessions, 1)
	assert.Empty(t, got[1].Sessions)
	assert.NotNil(t, got[1].Sessions, "sessions should be an empty slice, not nil")
}

func TestProgramService_GetPage(t *testing.T) {
	ctx := context.Background()
	pageRepo := newFakePageRepo()
	svc := NewProgramService(newFakeSymposiumRepo(), newFakeSessionRepo(), pageRepo, time.Second)

	require.NoError(t, pageRepo.Upsert(ctx, &domain.Page{Slug: "sede", TitleES: "Sede del congreso"}))

	page, err := svc.GetPage(ctx, "sede")
	require.NoError(t, err)
	assert.Equal(t, "Sede del congreso", page.TitleES)

	_, err = svc.GetPage(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
