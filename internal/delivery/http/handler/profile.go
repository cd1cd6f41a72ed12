package handler

import (
	"net/http"

	"github.com/Pesokrava/tournament_registry/internal/delivery/http/request"
	"github.com/Pesokrava/tournament_registry/internal/delivery/http/response"
	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/usecase/profile"
)

// ProfileHandler handles HTTP requests for profiles
type ProfileHandler struct {
	service *profile.Service
	errs    *ErrorResponder
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service *profile.Service, errs *ErrorResponder) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		errs:    errs,
	}
}

// ProfileRequest represents the request body for creating or updating a profile.
// UserIDs keeps its order; on update a missing list leaves the users untouched.
type ProfileRequest struct {
	Description string  `json:"description"`
	Active      *bool   `json:"active,omitempty"`
	UserIDs     []int64 `json:"user_ids"`
}

func userRefs(ids []int64) []domain.UserRef {
	users := make([]domain.UserRef, len(ids))
	for i, id := range ids {
		users[i] = domain.UserRef{ID: id}
	}
	return users
}

// Create handles POST /api/v1/profiles
// @Summary Create a profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param X-Operator-ID header int false "Operator performing the change"
// @Param profile body ProfileRequest true "Profile details"
// @Success 201 {object} map[string]interface{} "Profile created successfully"
// @Failure 400 {object} response.ErrorBody "Invalid profile data"
// @Failure 409 {object} response.ErrorBody "Profile already exists or references unknown users"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /profiles [post]
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	operatorID, err := request.GetOperatorID(r)
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptProfile, err))
		return
	}

	var req ProfileRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptProfile, err))
		return
	}

	p := &domain.Profile{
		Description: req.Description,
		Users:       userRefs(req.UserIDs),
	}

	if err := h.service.Create(r.Context(), p, operatorID); err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.Created(w, p)
}

// GetByID handles GET /api/v1/profiles/:id
// @Summary Get a profile with its users
// @Tags Profiles
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} map[string]interface{} "Profile details"
// @Failure 400 {object} response.ErrorBody "Invalid profile ID"
// @Failure 404 {object} response.ErrorBody "Profile not found"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIDParam(r, "id")
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptProfile, err))
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.Success(w, p)
}

// List handles GET /api/v1/profiles
// @Summary List profiles
// @Tags Profiles
// @Produce json
// @Param limit query int false "Number of items per page (max 100)" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Paginated list of profiles"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /profiles [get]
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := request.GetPaginationParams(r)

	profiles, total, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.Paginated(w, profiles, total, limit, offset)
}

// Update handles PUT /api/v1/profiles/:id
// @Summary Update a profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param id path int true "Profile ID"
// @Param X-Operator-ID header int false "Operator performing the change"
// @Param profile body ProfileRequest true "Updated profile details"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} response.ErrorBody "Invalid request"
// @Failure 404 {object} response.ErrorBody "Profile not found"
// @Failure 409 {object} response.ErrorBody "Conflicting profile data"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /profiles/{id} [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIDParam(r, "id")
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptProfile, err))
		return
	}

	operatorID, err := request.GetOperatorID(r)
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptProfile, err))
		return
	}

	var req ProfileRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptProfile, err))
		return
	}

	// Creation audit and omitted fields come from the stored profile
	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	p.Description = req.Description
	if req.Active != nil {
		p.Active = *req.Active
	}
	if req.UserIDs != nil {
		p.Users = userRefs(req.UserIDs)
	}

	if err := h.service.Update(r.Context(), p, operatorID); err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.Success(w, p)
}

// Delete handles DELETE /api/v1/profiles/:id
// @Summary Deactivate a profile
// @Tags Profiles
// @Param id path int true "Profile ID"
// @Param X-Operator-ID header int false "Operator performing the change"
// @Success 204 "Profile deactivated successfully"
// @Failure 400 {object} response.ErrorBody "Invalid profile ID"
// @Failure 404 {object} response.ErrorBody "Profile not found"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIDParam(r, "id")
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptProfile, err))
		return
	}

	operatorID, err := request.GetOperatorID(r)
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptProfile, err))
		return
	}

	if err := h.service.Delete(r.Context(), id, operatorID); err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.NoContent(w)
}
