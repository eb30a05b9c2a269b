package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"congressprogram/internal/domain"
	"congressprogram/internal/schedule"
)

type programService struct {
	symposiumRepo  domain.SymposiumRepository
	sessionRepo    domain.SessionRepository
	pageRepo       domain.PageRepository
	contextTimeout time.Duration
}

// NewProgramService creates the read side of the public program API.
func NewProgramService(
	symposiumRepo domain.SymposiumRepository,
	sessionRepo domain.SessionRepository,
	pageRepo domain.PageRepository,
	timeout time.Duration,
) domain.ProgramService {
	return &programService{
		symposiumRepo:  symposiumRepo,
		sessionRepo:    sessionRepo,
		pageRepo:       pageRepo,
		contextTimeout: timeout,
	}
}

func (s *programService) Days() []domain.ConferenceDay {
	return schedule.Days()
}

// DaySchedule projects the stored sessions onto one conference day: filter,
// group by start time, classify, and derive display facts per session.
func (s *programService) DaySchedule(ctx context.Context, day string) (*domain.DayScheduleView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	agenda := schedule.SelectDay(sessions, day)
	view := &domain.DayScheduleView{
		Date:      agenda.Date,
		TimeSlots: make([]domain.TimeSlotView, 0, len(agenda.TimeSlots)),
	}
	for _, slot := range agenda.TimeSlots {
		sv := domain.TimeSlotView{
			StartTime:   slot.StartTime,
			IsFullWidth: slot.IsFullWidth,
			Sessions:    make([]*domain.SessionView, 0, len(slot.Sessions)),
		}
		for _, sess := range slot.Sessions {
			sv.Sessions = append(sv.Sessions, schedule.View(sess))
		}
		view.TimeSlots = append(view.TimeSlots, sv)
	}
	return view, nil
}

func (s *programService) ListSymposiums(ctx context.Context) ([]*domain.SymposiumWithSessions, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	symposiums, err := s.symposiumRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list symposiums: %w", err)
	}
	sessions, err := s.sessionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	bySymposium := make(map[string][]*domain.Session)
	for _, sess := range sessions {
		if sess.SymposiumID == "" {
			continue
		}
		bySymposium[sess.SymposiumID] = append(bySymposium[sess.SymposiumID], sess)
	}

	out := make([]*domain.SymposiumWithSessions, 0, len(symposiums))
	for _, sym := range symposiums {
		sessionsFor := bySymposium[sym.ID]
		if sessionsFor == nil {
			sessionsFor = []*domain.Session{}
		}
		out = append(out, &domain.SymposiumWithSessions{
			Symposium: sym,
			Sessions:  sessionsFor,
		})
	}
	return out, nil
}

func (s *programService) GetPage(ctx context.Context, slug string) (*domain.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	page, err := s.pageRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get page: %w", err)
	}
	return page, nil
}
