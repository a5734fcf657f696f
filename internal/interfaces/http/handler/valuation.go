package handler

import (
	"github.com/gin-gonic/gin"
	valuationapp "github.com/rentals/backend/internal/application/valuation"
)

// ValuationHandler handles guest review endpoints
type ValuationHandler struct {
	BaseHandler
	valuationService *valuationapp.ValuationService
}

// NewValuationHandler creates a new ValuationHandler
func NewValuationHandler(valuationService *valuationapp.ValuationService) *ValuationHandler {
	return &ValuationHandler{valuationService: valuationService}
}

// Create godoc
// @ID           createValuation
//
//	@Summary		Review a stay
//	@Description	Score from 1 to 5 for an existing reservation
//	@Tags			valuations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		valuationapp.CreateValuationRequest	true	"Valuation request"
//	@Success		201		{object}	APIResponse[valuationapp.ValuationResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/valuations [post]
func (h *ValuationHandler) Create(c *gin.Context) {
	var req valuationapp.CreateValuationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	valuation, err := h.valuationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, valuation)
}

// GetByID godoc
// @ID           getValuationById
//
//	@Summary		Get valuation by ID
//	@Tags			valuations
//	@Produce		json
//	@Param			id	path		int	true	"Valuation ID"
//	@Success		200	{object}	APIResponse[valuationapp.ValuationResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/valuations/{id} [get]
func (h *ValuationHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	valuation, err := h.valuationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, valuation)
}

// List godoc
// @ID           listValuations
//
//	@Summary		List valuations
//	@Tags			valuations
//	@Produce		json
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)	maximum(100)
//	@Param			order_by	query		string	false	"Sort field"	Enums(id, score, valued_at)
//	@Param			order_dir	query		string	false	"Sort order"	Enums(asc, desc)
//	@Success		200			{object}	APIResponse[[]valuationapp.ValuationResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/valuations [get]
func (h *ValuationHandler) List(c *gin.Context) {
	var filter valuationapp.ValuationListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	valuations, total, err := h.valuationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := pageOf(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, valuations, total, page, pageSize)
}

// Update godoc
// @ID           updateValuation
//
//	@Summary		Update a valuation
//	@Tags			valuations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"Valuation ID"
//	@Param			request	body		valuationapp.UpdateValuationRequest	true	"Valuation update request"
//	@Success		200		{object}	APIResponse[valuationapp.ValuationResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/valuations/{id} [put]
func (h *ValuationHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req valuationapp.UpdateValuationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	valuation, err := h.valuationService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, valuation)
}

// Delete godoc
// @ID           deleteValuation
//
//	@Summary		Delete a valuation
//	@Tags			valuations
//	@Param			id	path	int	true	"Valuation ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/valuations/{id} [delete]
func (h *ValuationHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.valuationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListByReservation godoc
// @ID           listReservationValuations
//
//	@Summary		List the valuations of a reservation
//	@Tags			valuations
//	@Produce		json
//	@Param			id	path		int	true	"Reservation ID"
//	@Success		200	{object}	APIResponse[[]valuationapp.ValuationResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/reservations/{id}/valuations [get]
func (h *ValuationHandler) ListByReservation(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	valuations, err := h.valuationService.ListByReservation(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, valuations)
}
