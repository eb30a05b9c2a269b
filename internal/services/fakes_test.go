package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"congressprogram/internal/domain"
)

// In-memory fakes shared by the service tests.

type fakeSymposiumRepo struct {
	byID      map[string]*domain.Symposium
	nextID    int
	createErr error
}

func newFakeSymposiumRepo() *fakeSymposiumRepo {
	return &fakeSymposiumRepo{byID: make(map[string]*domain.Symposium), nextID: 1}
}

func (f *fakeSymposiumRepo) Create(ctx context.Context, s *domain.Symposium) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = fmt.Sprintf("sym-%d", f.nextID)
	f.nextID++
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSymposiumRepo) Update(ctx context.Context, s *domain.Symposium) error {
	if _, ok := f.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSymposiumRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeSymposiumRepo) GetByID(ctx context.Context, id string) (*domain.Symposium, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSymposiumRepo) List(ctx context.Context) ([]*domain.Symposium, error) {
	out := make([]*domain.Symposium, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (f *fakeSymposiumRepo) DeleteAll(ctx context.Context) error {
	f.byID = make(map[string]*domain.Symposium)
	return nil
}

type fakeSessionRepo struct {
	byID      map[string]*domain.Session
	nextID    int
	createErr error
	listErr   error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: make(map[string]*domain.Session), nextID: 1}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = fmt.Sprintf("sess-%d", f.nextID)
	f.nextID++
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	if _, ok := f.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) ListAll(ctx context.Context) ([]*domain.Session, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Session, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].SessionNumber < out[j].SessionNumber
	})
	return out, nil
}

func (f *fakeSessionRepo) DeleteAll(ctx context.Context) error {
	f.byID = make(map[string]*domain.Session)
	return nil
}

type fakeRoomRepo struct {
	byName map[string]*domain.Room
	nextID int
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{byName: make(map[string]*domain.Room), nextID: 1}
}

func (f *fakeRoomRepo) Upsert(ctx context.Context, room *domain.Room) error {
	if existing, ok := f.byName[room.Name]; ok {
		room.ID = existing.ID
		f.byName[room.Name] = room
		return nil
	}
	room.ID = fmt.Sprintf("room-%d", f.nextID)
	f.nextID++
	f.byName[room.Name] = room
	return nil
}

func (f *fakeRoomRepo) List(ctx context.Context) ([]*domain.Room, error) {
	out := make([]*domain.Room, 0, len(f.byName))
	for _, r := range f.byName {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRoomRepo) DeleteAll(ctx context.Context) error {
	f.byName = make(map[string]*domain.Room)
	return nil
}

type fakePresentationRepo struct {
	byID   map[string]*domain.Presentation
	nextID int
}

func newFakePresentationRepo() *fakePresentationRepo {
	return &fakePresentationRepo{byID: make(map[string]*domain.Presentation), nextID: 1}
}

func (f *fakePresentationRepo) Create(ctx context.Context, p *domain.Presentation) error {
	p.ID = fmt.Sprintf("pres-%d", f.nextID)
	f.nextID++
	f.byID[p.ID] = p
	return nil
}

func (f *fakePresentationRepo) Update(ctx context.Context, p *domain.Presentation) error {
	if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakePresentationRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakePresentationRepo) GetByID(ctx context.Context, id string) (*domain.Presentation, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePresentationRepo) List(ctx context.Context, sessionID string, params domain.PaginationParams) ([]*domain.Presentation, int, error) {
	var all []*domain.Presentation
	for _, p := range f.byID {
		if sessionID == "" || p.SessionID == sessionID {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

type fakePageRepo struct {
	bySlug map[string]*domain.Page
	nextID int
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{bySlug: make(map[string]*domain.Page), nextID: 1}
}

func (f *fakePageRepo) GetBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	if p, ok := f.bySlug[slug]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePageRepo) Upsert(ctx context.Context, page *domain.Page) error {
	if existing, ok := f.bySlug[page.Slug]; ok {
		page.ID = existing.ID
	} else {
		page.ID = fmt.Sprintf("page-%d", f.nextID)
		f.nextID++
	}
	page.UpdatedAt = time.Now()
	f.bySlug[page.Slug] = page
	return nil
}

func (f *fakePageRepo) List(ctx context.Context) ([]*domain.Page, error) {
	out := make([]*domain.Page, 0, len(f.bySlug))
	for _, p := range f.bySlug {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	roles   map[string][]string // userID -> roleIDs
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		roles:   make(map[string][]string),
		nextID:  1,
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.nextID++
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) AssignRole(ctx context.Context, userID, roleID string) error {
	f.roles[userID] = append(f.roles[userID], roleID)
	return nil
}

type fakeRoleRepo struct {
	byCode map[string]*domain.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		byCode: map[string]*domain.Role{
			"admin":  {ID: "role-admin", Code: "admin"},
			"editor": {ID: "role-editor", Code: "editor"},
		},
	}
}

func (f *fakeRoleRepo) GetByCode(ctx context.Context, code string) (*domain.Role, error) {
	if r, ok := f.byCode[code]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRoleRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Role, error) {
	return []*domain.Role{f.byCode["editor"]}, nil
}

// fakeHasher does reversible "hashing" so tests can assert inputs.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) {
	return salt + ":" + password, nil
}

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type fakeIssuer struct {
	lastRoles []string
}

func (f *fakeIssuer) Issue(userID, email string, roles []string, expiry time.Duration) (string, error) {
	f.lastRoles = roles
	return "token-" + userID, nil
}

type fakeEmailService struct {
	sent []*domain.SubmissionReceivedEmailData
	err  error
}

func (f *fakeEmailService) SendSubmissionReceived(ctx context.Context, data *domain.SubmissionReceivedEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

type fakeFeedFetcher struct {
	doc     domain.FeedDocument
	err     error
	lastURL string
}

func (f *fakeFeedFetcher) Fetch(ctx context.Context, url string) (domain.FeedDocument, error) {
	f.lastURL = url
	if f.err != nil {
		return domain.FeedDocument{}, f.err
	}
	return f.doc, nil
}

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return nil
}

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject:" + templateName, "<p>html</p>", "text", nil
}
