package controllers

import (
	"log/slog"
	"net/http"
	"regexp"

	h "congressprogram/internal/delivery/http/helpers"
	"congressprogram/internal/domain"
)

var dayRegexp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ProgramController serves the public, read-only program endpoints.
type ProgramController struct {
	Logger  *slog.Logger
	Service domain.ProgramService
}

func NewProgramController(logger *slog.Logger, svc domain.ProgramService) *ProgramController {
	return &ProgramController{
		Logger:  logger,
		Service: svc,
	}
}

// ListDays godoc
// @Summary List conference days
// @Description Returns the fixed table of conference days with localized labels.
// @Tags program
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the day list"
// @Router /program/days [get]
func (c *ProgramController) ListDays(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, c.Service.Days())
}

// GetDaySchedule godoc
// @Summary Get the schedule for one day
// @Description Returns the day's agenda: sessions grouped by start time with classified type, duration, and block extent per session. A day with no sessions returns an empty slot list.
// @Tags program
// @Produce json
// @Param day path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains the day schedule"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /program/days/{day} [get]
func (c *ProgramController) GetDaySchedule(w http.ResponseWriter, r *http.Request) {
	day := r.PathValue("day")
	if !dayRegexp.MatchString(day) {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "day must be YYYY-MM-DD")
		return
	}
	view, err := c.Service.DaySchedule(r.Context(), day)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, view)
}

// ListSymposiums godoc
// @Summary List symposiums with their sessions
// @Description Returns all symposiums ordered by number, each with its scheduled sessions.
// @Tags program
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the symposium list"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /program/symposiums [get]
func (c *ProgramController) ListSymposiums(w http.ResponseWriter, r *http.Request) {
	symposiums, err := c.Service.ListSymposiums(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, symposiums)
}

// GetPage godoc
// @Summary Get a content page
// @Description Returns a bilingual content page by slug.
// @Tags program
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} helpers.APIResponse "data contains the page"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /pages/{slug} [get]
func (c *ProgramController) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing slug")
		return
	}
	page, err := c.Service.GetPage(r.Context(), slug)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, page)
}
