package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "congressprogram/internal/delivery/http/helpers"
	"congressprogram/internal/domain"
)

// SymposiumRequest is the request body for creating or updating a symposium.
type SymposiumRequest struct {
	Number        int      `json:"number"`
	TitleES       string   `json:"title_es"`
	TitleEN       string   `json:"title_en"`
	DescriptionES string   `json:"description_es"`
	DescriptionEN string   `json:"description_en"`
	Coordinators  []string `json:"coordinators"`
}

// Validate implements Validator.
func (s SymposiumRequest) Validate() []string {
	var errs []string
	if s.Number < 1 {
		errs = append(errs, "number must be at least 1")
	}
	if strings.TrimSpace(s.TitleES) == "" {
		errs = append(errs, "title_es is required")
	}
	return errs
}

func (s SymposiumRequest) toDomain() *domain.Symposium {
	coordinators := s.Coordinators
	if coordinators == nil {
		coordinators = []string{}
	}
	return &domain.Symposium{
		Number:        s.Number,
		TitleES:       strings.TrimSpace(s.TitleES),
		TitleEN:       strings.TrimSpace(s.TitleEN),
		DescriptionES: s.DescriptionES,
		DescriptionEN: s.DescriptionEN,
		Coordinators:  coordinators,
	}
}

// SymposiumController serves the back-office symposium CRUD endpoints.
type SymposiumController struct {
	Logger  *slog.Logger
	Service domain.ProgramAdminService
}

func NewSymposiumController(logger *slog.Logger, svc domain.ProgramAdminService) *SymposiumController {
	return &SymposiumController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a symposium
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SymposiumRequest true "Symposium data"
// @Success 201 {object} helpers.APIResponse "data contains the created symposium"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/symposiums [post]
func (c *SymposiumController) Create(w http.ResponseWriter, r *http.Request) {
	var req SymposiumRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sym := req.toDomain()
	if err := c.Service.CreateSymposium(r.Context(), sym); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, sym)
}

// Update godoc
// @Summary Update a symposium
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Symposium ID (UUID)"
// @Param body body SymposiumRequest true "Symposium data"
// @Success 200 {object} helpers.APIResponse "data contains the updated symposium"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/symposiums/{id} [put]
func (c *SymposiumController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	var req SymposiumRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sym := req.toDomain()
	sym.ID = id
	if err := c.Service.UpdateSymposium(r.Context(), sym); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sym)
}

// Delete godoc
// @Summary Delete a symposium
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Symposium ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/symposiums/{id} [delete]
func (c *SymposiumController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.DeleteSymposium(r.Context(), id); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// List godoc
// @Summary List symposiums
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the symposium list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/symposiums [get]
func (c *SymposiumController) List(w http.ResponseWriter, r *http.Request) {
	symposiums, err := c.Service.ListSymposiums(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, symposiums)
}
