package handler

import (
	"net/http"

	"github.com/Pesokrava/tournament_registry/internal/delivery/http/request"
	"github.com/Pesokrava/tournament_registry/internal/delivery/http/response"
	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/usecase/municipality"
)

// MunicipalityHandler handles HTTP requests for municipalities
type MunicipalityHandler struct {
	service *municipality.Service
	errs    *ErrorResponder
}

// NewMunicipalityHandler creates a new municipality handler
func NewMunicipalityHandler(service *municipality.Service, errs *ErrorResponder) *MunicipalityHandler {
	return &MunicipalityHandler{
		service: service,
		errs:    errs,
	}
}

// MunicipalityRequest represents the request body for creating or updating a municipality
type MunicipalityRequest struct {
	RegionID    int64  `json:"region_id"`
	Description string `json:"description"`
}

// Create handles POST /api/v1/municipalities
// @Summary Create a municipality
// @Tags Municipalities
// @Accept json
// @Produce json
// @Param municipality body MunicipalityRequest true "Municipality details"
// @Success 201 {object} map[string]interface{} "Municipality created successfully"
// @Failure 400 {object} response.ErrorBody "Invalid municipality data"
// @Failure 409 {object} response.ErrorBody "Municipality already exists in the region"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /municipalities [post]
func (h *MunicipalityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req MunicipalityRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptMunicipality, err))
		return
	}

	m := &domain.Municipality{
		RegionID:    req.RegionID,
		Description: req.Description,
	}

	if err := h.service.Create(r.Context(), m); err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.Created(w, m)
}

// GetByID handles GET /api/v1/municipalities/:id
// @Summary Get a municipality by ID
// @Tags Municipalities
// @Produce json
// @Param id path int true "Municipality ID"
// @Success 200 {object} map[string]interface{} "Municipality details"
// @Failure 400 {object} response.ErrorBody "Invalid municipality ID"
// @Failure 404 {object} response.ErrorBody "Municipality not found"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /municipalities/{id} [get]
func (h *MunicipalityHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIDParam(r, "id")
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptMunicipality, err))
		return
	}

	m, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.Success(w, m)
}

// List handles GET /api/v1/municipalities
// @Summary List municipalities
// @Description Paginated list, optionally restricted to one region
// @Tags Municipalities
// @Produce json
// @Param region_id query int false "Region ID"
// @Param limit query int false "Number of items per page (max 100)" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Paginated list of municipalities"
// @Failure 400 {object} response.ErrorBody "Invalid region ID"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /municipalities [get]
func (h *MunicipalityHandler) List(w http.ResponseWriter, r *http.Request) {
	regionID, err := request.GetOptionalInt64Query(r, "region_id")
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptMunicipality, err))
		return
	}
	limit, offset := request.GetPaginationParams(r)

	municipalities, total, err := h.service.List(r.Context(), regionID, limit, offset)
	if err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.Paginated(w, municipalities, total, limit, offset)
}

// Update handles PUT /api/v1/municipalities/:id
// @Summary Update a municipality
// @Tags Municipalities
// @Accept json
// @Produce json
// @Param id path int true "Municipality ID"
// @Param municipality body MunicipalityRequest true "Updated municipality details"
// @Success 200 {object} map[string]interface{} "Municipality updated successfully"
// @Failure 400 {object} response.ErrorBody "Invalid request"
// @Failure 404 {object} response.ErrorBody "Municipality not found"
// @Failure 409 {object} response.ErrorBody "Municipality already exists in the region"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /municipalities/{id} [put]
func (h *MunicipalityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIDParam(r, "id")
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptMunicipality, err))
		return
	}

	var req MunicipalityRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptMunicipality, err))
		return
	}

	m := &domain.Municipality{
		ID:          id,
		RegionID:    req.RegionID,
		Description: req.Description,
	}

	if err := h.service.Update(r.Context(), m); err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.Success(w, m)
}

// Delete handles DELETE /api/v1/municipalities/:id
// @Summary Delete a municipality
// @Tags Municipalities
// @Param id path int true "Municipality ID"
// @Success 204 "Municipality deleted successfully"
// @Failure 400 {object} response.ErrorBody "Invalid municipality ID"
// @Failure 404 {object} response.ErrorBody "Municipality not found"
// @Failure 409 {object} response.ErrorBody "Municipality is still referenced"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /municipalities/{id} [delete]
func (h *MunicipalityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIDParam(r, "id")
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptMunicipality, err))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.NoContent(w)
}
