package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "congressprogram/internal/delivery/http/helpers"
	"congressprogram/internal/domain"
)

// PageRequest is the request body for PUT /admin/pages/{slug}.
type PageRequest struct {
	TitleES string `json:"title_es"`
	TitleEN string `json:"title_en"`
	BodyES  string `json:"body_es"`
	BodyEN  string `json:"body_en"`
}

// Validate implements Validator.
func (p PageRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.TitleES) == "" {
		errs = append(errs, "title_es is required")
	}
	return errs
}

// PageController serves the back-office content page endpoints.
type PageController struct {
	Logger  *slog.Logger
	Service domain.ProgramAdminService
}

func NewPageController(logger *slog.Logger, svc domain.ProgramAdminService) *PageController {
	return &PageController{
		Logger:  logger,
		Service: svc,
	}
}

// Upsert godoc
// @Summary Create or replace a content page
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Page slug"
// @Param body body PageRequest true "Page content"
// @Success 200 {object} helpers.APIResponse "data contains the stored page"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/pages/{slug} [put]
func (c *PageController) Upsert(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing slug")
		return
	}
	var req PageRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	page := &domain.Page{
		Slug:    slug,
		TitleES: strings.TrimSpace(req.TitleES),
		TitleEN: strings.TrimSpace(req.TitleEN),
		BodyES:  req.BodyES,
		BodyEN:  req.BodyEN,
	}
	if err := c.Service.UpsertPage(r.Context(), page); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, page)
}

// List godoc
// @Summary List content pages
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the page list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/pages [get]
func (c *PageController) List(w http.ResponseWriter, r *http.Request) {
	pages, err := c.Service.ListPages(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, pages)
}
