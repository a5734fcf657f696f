package handler

import (
	"github.com/gin-gonic/gin"
	reservationapp "github.com/rentals/backend/internal/application/reservation"
)

// ReservationHandler handles reservation-related API endpoints
type ReservationHandler struct {
	BaseHandler
	reservationService *reservationapp.ReservationService
}

// NewReservationHandler creates a new ReservationHandler
func NewReservationHandler(reservationService *reservationapp.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// Create godoc
// @ID           createReservation
//
//	@Summary		Book a property
//	@Description	Dates use YYYY-MM-DD and the end date must follow the start date.
//	@Description	The total price defaults to nights times the nightly price of the property.
//	@Tags			reservations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		reservationapp.CreateReservationRequest	true	"Reservation request"
//	@Success		201		{object}	APIResponse[reservationapp.ReservationResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reservationapp.CreateReservationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, reservation)
}

// GetByID godoc
// @ID           getReservationById
//
//	@Summary		Get reservation by ID
//	@Tags			reservations
//	@Produce		json
//	@Param			id	path		int	true	"Reservation ID"
//	@Success		200	{object}	APIResponse[reservationapp.ReservationResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/reservations/{id} [get]
func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	reservation, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reservation)
}

// List godoc
// @ID           listReservations
//
//	@Summary		List reservations
//	@Tags			reservations
//	@Produce		json
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)	maximum(100)
//	@Param			order_by	query		string	false	"Sort field"	Enums(id, start_date, end_date, status, total_price)
//	@Param			order_dir	query		string	false	"Sort order"	Enums(asc, desc)
//	@Success		200			{object}	APIResponse[[]reservationapp.ReservationResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	var filter reservationapp.ReservationListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	reservations, total, err := h.reservationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := pageOf(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, reservations, total, page, pageSize)
}

// ListIDs godoc
// @ID           listReservationIds
//
//	@Summary		List every reservation ID
//	@Tags			reservations
//	@Produce		json
//	@Success		200	{object}	APIResponse[[]int64]
//	@Failure		500	{object}	ErrorResponse
//	@Router			/reservations/ids [get]
func (h *ReservationHandler) ListIDs(c *gin.Context) {
	ids, err := h.reservationService.ListIDs(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ids)
}

// Update godoc
// @ID           updateReservation
//
//	@Summary		Update a reservation
//	@Description	Omitted fields keep their current value. Cancelled reservations cannot be modified.
//	@Tags			reservations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int										true	"Reservation ID"
//	@Param			request	body		reservationapp.UpdateReservationRequest	true	"Reservation update request"
//	@Success		200		{object}	APIResponse[reservationapp.ReservationResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req reservationapp.UpdateReservationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	reservation, err := h.reservationService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reservation)
}

// Confirm godoc
// @ID           confirmReservation
//
//	@Summary		Confirm a pending reservation
//	@Tags			reservations
//	@Produce		json
//	@Param			id	path		int	true	"Reservation ID"
//	@Success		200	{object}	APIResponse[reservationapp.ReservationResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	reservation, err := h.reservationService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reservation)
}

// Cancel godoc
// @ID           cancelReservation
//
//	@Summary		Cancel a reservation
//	@Description	The body is optional and may carry a cancellation reason.
//	@Tags			reservations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int										true	"Reservation ID"
//	@Param			request	body		reservationapp.CancelReservationRequest	false	"Cancellation reason"
//	@Success		200		{object}	APIResponse[reservationapp.ReservationResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req reservationapp.CancelReservationRequest
	if c.Request.ContentLength != 0 && !h.bindJSON(c, &req) {
		return
	}

	reservation, err := h.reservationService.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reservation)
}

// Delete godoc
// @ID           deleteReservation
//
//	@Summary		Delete a reservation
//	@Description	Reports how many reservations were removed; an unknown ID removes none.
//	@Description	A reservation with payments or valuations cannot be deleted.
//	@Tags			reservations
//	@Produce		json
//	@Param			id	path		int	true	"Reservation ID"
//	@Success		200	{object}	APIResponse[DeletedData]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	removed, err := h.reservationService.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, DeletedData{ID: id, Removed: removed})
}
