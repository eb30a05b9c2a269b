package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "congressprogram/internal/delivery/http/helpers"
	"congressprogram/internal/domain"
)

// SessionRequest is the request body for creating or updating a session.
// All fields except day are optional; empty string means absent.
type SessionRequest struct {
	SymposiumID   string `json:"symposium_id"`
	RoomID        string `json:"room_id"`
	SessionNumber int    `json:"session_number"`
	Day           string `json:"day"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Title         string `json:"title"`
	EventType     string `json:"event_type"`
	NotesES       string `json:"notes_es"`
	NotesEN       string `json:"notes_en"`
	Speakers      string `json:"speakers"`
	Room          string `json:"room"`
	Description   string `json:"description"`
}

// Validate implements Validator.
func (s SessionRequest) Validate() []string {
	var errs []string
	if s.Day == "" {
		errs = append(errs, "day is required")
	} else if _, err := time.Parse("2006-01-02", s.Day); err != nil {
		errs = append(errs, "day must be YYYY-MM-DD")
	}
	for _, t := range []string{s.StartTime, s.EndTime} {
		if t == "" {
			continue
		}
		if _, err := time.Parse("15:04", t); err != nil {
			errs = append(errs, "times must be HH:MM")
			break
		}
	}
	if s.EventType != "" && !domain.ValidEventType(s.EventType) {
		errs = append(errs, "event_type must be one of symposium, panel, plenary, welcome, break, workshop")
	}
	if s.SessionNumber < 0 {
		errs = append(errs, "session_number must not be negative")
	}
	return errs
}

func (s SessionRequest) toDomain() *domain.Session {
	return &domain.Session{
		SymposiumID:   s.SymposiumID,
		RoomID:        s.RoomID,
		SessionNumber: s.SessionNumber,
		Day:           s.Day,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		Title:         strings.TrimSpace(s.Title),
		EventType:     s.EventType,
		NotesES:       s.NotesES,
		NotesEN:       s.NotesEN,
		Speakers:      s.Speakers,
		Room:          s.Room,
		Description:   s.Description,
	}
}

// ImportProgramRequest is the request body for POST /admin/program/import.
// An empty feed_url imports from the feed configured at startup.
type ImportProgramRequest struct {
	FeedURL string `json:"feed_url"`
}

// Validate implements Validator.
func (i ImportProgramRequest) Validate() []string {
	return nil
}

// SessionController serves the back-office session endpoints, including the
// bulk program feed import.
type SessionController struct {
	Logger  *slog.Logger
	Service domain.ProgramAdminService
}

func NewSessionController(logger *slog.Logger, svc domain.ProgramAdminService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a session
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SessionRequest true "Session data"
// @Success 201 {object} helpers.APIResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/sessions [post]
func (c *SessionController) Create(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sess := req.toDomain()
	if err := c.Service.CreateSession(r.Context(), sess); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, sess)
}

// Update godoc
// @Summary Update a session
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID (UUID)"
// @Param body body SessionRequest true "Session data"
// @Success 200 {object} helpers.APIResponse "data contains the updated session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/sessions/{id} [put]
func (c *SessionController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	var req SessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sess := req.toDomain()
	sess.ID = id
	if err := c.Service.UpdateSession(r.Context(), sess); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sess)
}

// Delete godoc
// @Summary Delete a session
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/sessions/{id} [delete]
func (c *SessionController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.DeleteSession(r.Context(), id); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// List godoc
// @Summary List all sessions
// @Description Returns all sessions with joined symposium and room data, ordered by day then start time.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the session list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/sessions [get]
func (c *SessionController) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.ListSessions(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListRooms godoc
// @Summary List rooms
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the room list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/rooms [get]
func (c *SessionController) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := c.Service.ListRooms(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, rooms)
}

// ImportProgram godoc
// @Summary Import the whole program from a feed
// @Description Replaces all symposiums, rooms and sessions with the contents of a published JSON feed. Rooms are matched by name, symposiums by number. An empty feed_url uses the feed configured at startup.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ImportProgramRequest true "Feed location (feed_url may be empty)"
// @Success 200 {object} helpers.APIResponse "data contains a status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/program/import [post]
func (c *SessionController) ImportProgram(w http.ResponseWriter, r *http.Request) {
	var req ImportProgramRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.ImportProgram(r.Context(), strings.TrimSpace(req.FeedURL)); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "imported"})
}
