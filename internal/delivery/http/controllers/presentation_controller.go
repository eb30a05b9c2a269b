package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "congressprogram/internal/delivery/http/helpers"
	"congressprogram/internal/domain"
)

// PresentationRequest is the request body for creating or updating a presentation.
type PresentationRequest struct {
	SessionID         string `json:"session_id"`
	TitleES           string `json:"title_es"`
	TitleEN           string `json:"title_en"`
	AbstractES        string `json:"abstract_es"`
	AbstractEN        string `json:"abstract_en"`
	AuthorName        string `json:"author_name"`
	AuthorInstitution string `json:"author_institution"`
	AuthorEmail       string `json:"author_email"`
	AuthorCountry     string `json:"author_country"`
	DurationMinutes   int    `json:"duration_minutes"`
	PresentationOrder int    `json:"presentation_order"`
	Kind              string `json:"kind"`
}

// Validate implements Validator.
func (p PresentationRequest) Validate() []string {
	var errs []string
	if p.SessionID == "" {
		errs = append(errs, "session_id is required")
	}
	if strings.TrimSpace(p.TitleES) == "" {
		errs = append(errs, "title_es is required")
	}
	if strings.TrimSpace(p.AuthorName) == "" {
		errs = append(errs, "author_name is required")
	}
	if p.AuthorEmail != "" && !emailRegexp.MatchString(p.AuthorEmail) {
		errs = append(errs, "invalid author_email format")
	}
	switch p.Kind {
	case domain.PresentationOral, domain.PresentationPoster, domain.PresentationVideo:
	default:
		errs = append(errs, "kind must be one of oral, poster, video")
	}
	if p.DurationMinutes < 0 {
		errs = append(errs, "duration_minutes must not be negative")
	}
	return errs
}

func (p PresentationRequest) toDomain() *domain.Presentation {
	return &domain.Presentation{
		SessionID:         p.SessionID,
		TitleES:           strings.TrimSpace(p.TitleES),
		TitleEN:           strings.TrimSpace(p.TitleEN),
		AbstractES:        p.AbstractES,
		AbstractEN:        p.AbstractEN,
		AuthorName:        strings.TrimSpace(p.AuthorName),
		AuthorInstitution: p.AuthorInstitution,
		AuthorEmail:       strings.TrimSpace(strings.ToLower(p.AuthorEmail)),
		AuthorCountry:     p.AuthorCountry,
		DurationMinutes:   p.DurationMinutes,
		PresentationOrder: p.PresentationOrder,
		Kind:              p.Kind,
	}
}

// ListPresentationsResponse is the data payload for GET /admin/presentations.
type ListPresentationsResponse struct {
	Items      []*domain.Presentation `json:"items"`
	Pagination h.PaginationMeta       `json:"pagination"`
}

// PresentationController serves the back-office presentation CRUD endpoints.
type PresentationController struct {
	Logger  *slog.Logger
	Service domain.ProgramAdminService
}

func NewPresentationController(logger *slog.Logger, svc domain.ProgramAdminService) *PresentationController {
	return &PresentationController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Register a presentation
// @Description Register a presentation in a session. When author_email is set, a confirmation email is sent to the author (best effort).
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PresentationRequest true "Presentation data"
// @Success 201 {object} helpers.APIResponse "data contains the created presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/presentations [post]
func (c *PresentationController) Create(w http.ResponseWriter, r *http.Request) {
	var req PresentationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	p := req.toDomain()
	if err := c.Service.CreatePresentation(r.Context(), p); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, p)
}

// Update godoc
// @Summary Update a presentation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Presentation ID (UUID)"
// @Param body body PresentationRequest true "Presentation data"
// @Success 200 {object} helpers.APIResponse "data contains the updated presentation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/presentations/{id} [put]
func (c *PresentationController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	var req PresentationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	p := req.toDomain()
	p.ID = id
	if err := c.Service.UpdatePresentation(r.Context(), p); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, p)
}

// Delete godoc
// @Summary Delete a presentation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Presentation ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/presentations/{id} [delete]
func (c *PresentationController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.DeletePresentation(r.Context(), id); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// List godoc
// @Summary List presentations
// @Description Returns a page of presentations, optionally filtered by session_id.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param session_id query string false "Filter by session ID"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/presentations [get]
func (c *PresentationController) List(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	sessionID := r.URL.Query().Get("session_id")
	items, total, err := c.Service.ListPresentations(r.Context(), sessionID, params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if items == nil {
		items = []*domain.Presentation{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, ListPresentationsResponse{
		Items:      items,
		Pagination: h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
