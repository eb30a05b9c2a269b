package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"congressprogram/internal/domain"
)

type programAdminService struct {
	symposiumRepo    domain.SymposiumRepository
	sessionRepo      domain.SessionRepository
	roomRepo         domain.RoomRepository
	presentationRepo domain.PresentationRepository
	pageRepo         domain.PageRepository
	emailService     domain.EmailService
	feedFetcher      domain.ProgramFeedFetcher
	defaultFeedURL   string
	contextTimeout   time.Duration
}

// NewProgramAdminService creates the back-office service for program management.
func NewProgramAdminService(
	symposiumRepo domain.SymposiumRepository,
	sessionRepo domain.SessionRepository,
	roomRepo domain.RoomRepository,
	presentationRepo domain.PresentationRepository,
	pageRepo domain.PageRepository,
	emailService domain.EmailService,
	feedFetcher domain.ProgramFeedFetcher,
	defaultFeedURL string,
	timeout time.Duration,
) domain.ProgramAdminService {
	return &programAdminService{
		symposiumRepo:    symposiumRepo,
		sessionRepo:      sessionRepo,
		roomRepo:         roomRepo,
		presentationRepo: presentationRepo,
		pageRepo:         pageRepo,
		emailService:     emailService,
		feedFetcher:      feedFetcher,
		defaultFeedURL:   defaultFeedURL,
		contextTimeout:   timeout,
	}
}

func (s *programAdminService) CreateSymposium(ctx context.Context, sym *domain.Symposium) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateSymposium(sym); err != nil {
		return err
	}
	now := time.Now()
	sym.CreatedAt = now
	sym.UpdatedAt = now
	if sym.Coordinators == nil {
		sym.Coordinators = []string{}
	}
	return s.symposiumRepo.Create(ctx, sym)
}

func (s *programAdminService) UpdateSymposium(ctx context.Context, sym *domain.Symposium) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if sym.ID == "" {
		return fmt.Errorf("symposium id is required: %w", domain.ErrInvalidInput)
	}
	if err := validateSymposium(sym); err != nil {
		return err
	}
	sym.UpdatedAt = time.Now()
	if sym.Coordinators == nil {
		sym.Coordinators = []string{}
	}
	return s.symposiumRepo.Update(ctx, sym)
}

func (s *programAdminService) DeleteSymposium(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.symposiumRepo.Delete(ctx, id)
}

func (s *programAdminService) ListSymposiums(ctx context.Context) ([]*domain.Symposium, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.symposiumRepo.List(ctx)
}

func validateSymposium(sym *domain.Symposium) error {
	if sym.Number < 1 {
		return fmt.Errorf("symposium number must be positive: %w", domain.ErrInvalidInput)
	}
	if sym.TitleES == "" {
		return fmt.Errorf("symposium title (es) is required: %w", domain.ErrInvalidInput)
	}
	return nil
}

func (s *programAdminService) CreateSession(ctx context.Context, sess *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.validateSession(ctx, sess); err != nil {
		return err
	}
	now := time.Now()
	sess.CreatedAt = now
	sess.UpdatedAt = now
	return s.sessionRepo.Create(ctx, sess)
}

func (s *programAdminService) UpdateSession(ctx context.Context, sess *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if sess.ID == "" {
		return fmt.Errorf("session id is required: %w", domain.ErrInvalidInput)
	}
	if err := s.validateSession(ctx, sess); err != nil {
		return err
	}
	sess.UpdatedAt = time.Now()
	return s.sessionRepo.Update(ctx, sess)
}

func (s *programAdminService) DeleteSession(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.sessionRepo.Delete(ctx, id)
}

func (s *programAdminService) ListSessions(ctx context.Context) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.sessionRepo.ListAll(ctx)
}

func (s *programAdminService) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.roomRepo.List(ctx)
}

func (s *programAdminService) validateSession(ctx context.Context, sess *domain.Session) error {
	if sess.Day == "" {
		return fmt.Errorf("session day is required: %w", domain.ErrInvalidInput)
	}
	if _, err := time.Parse("2006-01-02", sess.Day); err != nil {
		return fmt.Errorf("session day must be YYYY-MM-DD: %w", domain.ErrInvalidInput)
	}
	for _, t := range []string{sess.StartTime, sess.EndTime} {
		if t == "" {
			continue
		}
		if _, err := time.Parse("15:04", t); err != nil {
			return fmt.Errorf("session times must be HH:MM: %w", domain.ErrInvalidInput)
		}
	}
	if sess.EventType != "" && !domain.ValidEventType(sess.EventType) {
		return fmt.Errorf("unknown event type %q: %w", sess.EventType, domain.ErrInvalidInput)
	}
	if sess.SymposiumID != "" {
		if _, err := s.symposiumRepo.GetByID(ctx, sess.SymposiumID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("symposium %s does not exist: %w", sess.SymposiumID, domain.ErrInvalidInput)
			}
			return fmt.Errorf("check symposium: %w", err)
		}
	}
	return nil
}

func (s *programAdminService) CreatePresentation(ctx context.Context, p *domain.Presentation) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validatePresentation(p); err != nil {
		return err
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.presentationRepo.Create(ctx, p); err != nil {
		return err
	}

	// Best effort: a failed notification never rolls back the registration.
	if p.AuthorEmail != "" {
		data := &domain.SubmissionReceivedEmailData{
			Email:           p.AuthorEmail,
			AuthorName:      p.AuthorName,
			TitleES:         p.TitleES,
			TitleEN:         p.TitleEN,
			Kind:            p.Kind,
			DurationMinutes: p.DurationMinutes,
		}
		if err := s.emailService.SendSubmissionReceived(ctx, data); err != nil {
			log.Printf("[PROGRAM] failed to send submission email to %s: %v", p.AuthorEmail, err)
		}
	}
	return nil
}

func (s *programAdminService) UpdatePresentation(ctx context.Context, p *domain.Presentation) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if p.ID == "" {
		return fmt.Errorf("presentation id is required: %w", domain.ErrInvalidInput)
	}
	if err := validatePresentation(p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	return s.presentationRepo.Update(ctx, p)
}

func (s *programAdminService) DeletePresentation(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.presentationRepo.Delete(ctx, id)
}

func (s *programAdminService) ListPresentations(ctx context.Context, sessionID string, params domain.PaginationParams) ([]*domain.Presentation, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.presentationRepo.List(ctx, sessionID, params)
}

func validatePresentation(p *domain.Presentation) error {
	if p.SessionID == "" {
		return fmt.Errorf("presentation session is required: %w", domain.ErrInvalidInput)
	}
	if p.TitleES == "" {
		return fmt.Errorf("presentation title (es) is required: %w", domain.ErrInvalidInput)
	}
	if p.AuthorName == "" {
		return fmt.Errorf("presentation author is required: %w", domain.ErrInvalidInput)
	}
	if p.AuthorEmail != "" && !emailRegexp.MatchString(p.AuthorEmail) {
		return fmt.Errorf("invalid author email: %w", domain.ErrInvalidInput)
	}
	switch p.Kind {
	case domain.PresentationOral, domain.PresentationPoster, domain.PresentationVideo:
	default:
		return fmt.Errorf("unknown presentation kind %q: %w", p.Kind, domain.ErrInvalidInput)
	}
	if p.DurationMinutes < 0 {
		return fmt.Errorf("presentation duration must not be negative: %w", domain.ErrInvalidInput)
	}
	return nil
}

func (s *programAdminService) UpsertPage(ctx context.Context, page *domain.Page) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if page.Slug == "" {
		return fmt.Errorf("page slug is required: %w", domain.ErrInvalidInput)
	}
	return s.pageRepo.Upsert(ctx, page)
}

func (s *programAdminService) ListPages(ctx context.Context) ([]*domain.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.pageRepo.List(ctx)
}

// ImportProgram replaces the whole program with the contents of a published
// feed. Symposiums are matched to sessions by number, rooms by name. An empty
// feedURL falls back to the configured feed.
func (s *programAdminService) ImportProgram(ctx context.Context, feedURL string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if feedURL == "" {
		feedURL = s.defaultFeedURL
	}
	if feedURL == "" {
		return fmt.Errorf("feed url is required: %w", domain.ErrInvalidInput)
	}
	doc, err := s.feedFetcher.Fetch(ctx, feedURL)
	if err != nil {
		return fmt.Errorf("fetch feed: %w", err)
	}

	// Sessions first: they reference both rooms and symposiums.
	if err := s.sessionRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	if err := s.symposiumRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear symposiums: %w", err)
	}
	if err := s.roomRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear rooms: %w", err)
	}

	now := time.Now()
	symposiumIDByNumber := make(map[int]string, len(doc.Symposiums))
	for _, fs := range doc.Symposiums {
		sym := domain.NewSymposium(fs.Number, fs.TitleES, fs.TitleEN, fs.DescriptionES, fs.DescriptionEN, fs.Coordinators, now, now)
		if sym.Coordinators == nil {
			sym.Coordinators = []string{}
		}
		if err := validateSymposium(sym); err != nil {
			return fmt.Errorf("feed symposium %d: %w", fs.Number, err)
		}
		if err := s.symposiumRepo.Create(ctx, sym); err != nil {
			return fmt.Errorf("import symposium %d: %w", fs.Number, err)
		}
		symposiumIDByNumber[fs.Number] = sym.ID
	}

	roomIDByName := make(map[string]string)
	for _, fs := range doc.Sessions {
		if fs.RoomName == "" {
			continue
		}
		if _, ok := roomIDByName[fs.RoomName]; ok {
			continue
		}
		room := domain.NewRoom(fs.RoomName, now, now)
		if err := s.roomRepo.Upsert(ctx, room); err != nil {
			return fmt.Errorf("import room %q: %w", fs.RoomName, err)
		}
		roomIDByName[fs.RoomName] = room.ID
	}

	for i, fs := range doc.Sessions {
		symposiumID := ""
		if fs.SymposiumNumber != 0 {
			id, ok := symposiumIDByNumber[fs.SymposiumNumber]
			if !ok {
				return fmt.Errorf("feed session %d references unknown symposium %d: %w", i, fs.SymposiumNumber, domain.ErrInvalidInput)
			}
			symposiumID = id
		}
		sess := domain.NewSession(symposiumID, roomIDByName[fs.RoomName], fs.SessionNumber, fs.Day, fs.StartTime, fs.EndTime, now, now)
		sess.Title = fs.Title
		sess.EventType = fs.EventType
		sess.NotesES = fs.NotesES
		sess.NotesEN = fs.NotesEN
		sess.Speakers = fs.Speakers
		sess.Description = fs.Description
		if err := s.validateSession(ctx, sess); err != nil {
			return fmt.Errorf("feed session %d: %w", i, err)
		}
		if err := s.sessionRepo.Create(ctx, sess); err != nil {
			return fmt.Errorf("import session %d: %w", i, err)
		}
	}

	log.Printf("[PROGRAM] Imported %d symposiums, %d sessions from feed", len(doc.Symposiums), len(doc.Sessions))
	return nil
}
