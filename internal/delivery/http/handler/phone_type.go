package handler

import (
	"net/http"

	"github.com/Pesokrava/tournament_registry/internal/delivery/http/request"
	"github.com/Pesokrava/tournament_registry/internal/delivery/http/response"
	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/usecase/phonetype"
)

// PhoneTypeHandler handles HTTP requests for phone types
type PhoneTypeHandler struct {
	service *phonetype.Service
	errs    *ErrorResponder
}

// NewPhoneTypeHandler creates a new phone type handler
func NewPhoneTypeHandler(service *phonetype.Service, errs *ErrorResponder) *PhoneTypeHandler {
	return &PhoneTypeHandler{
		service: service,
		errs:    errs,
	}
}

// PhoneTypeRequest represents the request body for creating or updating a phone type
type PhoneTypeRequest struct {
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// Create handles POST /api/v1/phone-types
// @Summary Create a phone type
// @Tags PhoneTypes
// @Accept json
// @Produce json
// @Param X-Operator-ID header int false "Operator performing the change"
// @Param phone_type body PhoneTypeRequest true "Phone type details"
// @Success 201 {object} map[string]interface{} "Phone type created successfully"
// @Failure 400 {object} response.ErrorBody "Invalid phone type data"
// @Failure 409 {object} response.ErrorBody "Phone type already exists"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /phone-types [post]
func (h *PhoneTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	operatorID, err := request.GetOperatorID(r)
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptPhoneType, err))
		return
	}

	var req PhoneTypeRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptPhoneType, err))
		return
	}

	pt := &domain.PhoneType{Description: req.Description}

	if err := h.service.Create(r.Context(), pt, operatorID); err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.Created(w, pt)
}

// GetByID handles GET /api/v1/phone-types/:id
// @Summary Get a phone type by ID
// @Tags PhoneTypes
// @Produce json
// @Param id path int true "Phone type ID"
// @Success 200 {object} map[string]interface{} "Phone type details"
// @Failure 400 {object} response.ErrorBody "Invalid phone type ID"
// @Failure 404 {object} response.ErrorBody "Phone type not found"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /phone-types/{id} [get]
func (h *PhoneTypeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIDParam(r, "id")
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptPhoneType, err))
		return
	}

	pt, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.Success(w, pt)
}

// List handles GET /api/v1/phone-types
// @Summary List phone types
// @Tags PhoneTypes
// @Produce json
// @Param limit query int false "Number of items per page (max 100)" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Paginated list of phone types"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /phone-types [get]
func (h *PhoneTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := request.GetPaginationParams(r)

	phoneTypes, total, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.Paginated(w, phoneTypes, total, limit, offset)
}

// Update handles PUT /api/v1/phone-types/:id
// @Summary Update a phone type
// @Tags PhoneTypes
// @Accept json
// @Produce json
// @Param id path int true "Phone type ID"
// @Param X-Operator-ID header int false "Operator performing the change"
// @Param phone_type body PhoneTypeRequest true "Updated phone type details"
// @Success 200 {object} map[string]interface{} "Phone type updated successfully"
// @Failure 400 {object} response.ErrorBody "Invalid request"
// @Failure 404 {object} response.ErrorBody "Phone type not found"
// @Failure 409 {object} response.ErrorBody "Phone type already exists"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /phone-types/{id} [put]
func (h *PhoneTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIDParam(r, "id")
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptPhoneType, err))
		return
	}

	operatorID, err := request.GetOperatorID(r)
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptPhoneType, err))
		return
	}

	var req PhoneTypeRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptPhoneType, err))
		return
	}

	pt, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	pt.Description = req.Description
	if req.Active != nil {
		pt.Active = *req.Active
	}

	if err := h.service.Update(r.Context(), pt, operatorID); err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.Success(w, pt)
}

// Delete handles DELETE /api/v1/phone-types/:id
// @Summary Deactivate a phone type
// @Tags PhoneTypes
// @Param id path int true "Phone type ID"
// @Param X-Operator-ID header int false "Operator performing the change"
// @Success 204 "Phone type deactivated successfully"
// @Failure 400 {object} response.ErrorBody "Invalid phone type ID"
// @Failure 404 {object} response.ErrorBody "Phone type not found"
// @Failure 500 {object} response.ErrorBody "Operation failed"
// @Router /phone-types/{id} [delete]
func (h *PhoneTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetIDParam(r, "id")
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptPhoneType, err))
		return
	}

	operatorID, err := request.GetOperatorID(r)
	if err != nil {
		h.errs.Respond(w, r, domain.NewInvalidInput(domain.ConceptPhoneType, err))
		return
	}

	if err := h.service.Delete(r.Context(), id, operatorID); err != nil {
		h.errs.Respond(w, r, err)
		return
	}

	response.NoContent(w)
}
