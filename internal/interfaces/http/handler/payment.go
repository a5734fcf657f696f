package handler

import (
	"github.com/gin-gonic/gin"
	paymentapp "github.com/rentals/backend/internal/application/payment"
)

// PaymentHandler handles payment-related API endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *paymentapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *paymentapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create godoc
// @ID           createPayment
//
//	@Summary		Record a payment
//	@Description	The amount defaults to the reservation total and accepts a comma or a dot as decimal separator.
//	@Description	The transaction reference is assigned by the server. Send an Idempotency-Key to make retries safe.
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string							false	"Client generated UUID"	format(uuid)
//	@Param			request			body		paymentapp.CreatePaymentRequest	true	"Payment request"
//	@Success		201				{object}	APIResponse[paymentapp.PaymentResponse]
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Failure		500				{object}	ErrorResponse
//	@Router			/payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req paymentapp.CreatePaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, payment)
}

// GetByID godoc
// @ID           getPaymentById
//
//	@Summary		Get payment by ID
//	@Tags			payments
//	@Produce		json
//	@Param			id	path		int	true	"Payment ID"
//	@Success		200	{object}	APIResponse[paymentapp.PaymentResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/payments/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payment)
}

// List godoc
// @ID           listPayments
//
//	@Summary		List payments
//	@Tags			payments
//	@Produce		json
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)	maximum(100)
//	@Param			order_by	query		string	false	"Sort field"	Enums(id, paid_at, amount, status, reference)
//	@Param			order_dir	query		string	false	"Sort order"	Enums(asc, desc)
//	@Success		200			{object}	APIResponse[[]paymentapp.PaymentResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	var filter paymentapp.PaymentListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	payments, total, err := h.paymentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := pageOf(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, payments, total, page, pageSize)
}

// Update godoc
// @ID           updatePayment
//
//	@Summary		Update the method and status of a payment
//	@Description	Amount, reference and reservation are immutable. The change is recorded in the payment history.
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Payment ID"
//	@Param			request	body		paymentapp.UpdatePaymentRequest	true	"Payment update request"
//	@Success		200		{object}	APIResponse[paymentapp.PaymentResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/payments/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req paymentapp.UpdatePaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payment)
}

// Delete godoc
// @ID           deletePayment
//
//	@Summary		Delete a payment
//	@Description	The payment history is kept.
//	@Tags			payments
//	@Param			id	path	int	true	"Payment ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// History godoc
// @ID           getPaymentHistory
//
//	@Summary		Get the audit trail of a payment
//	@Tags			payments
//	@Produce		json
//	@Param			id	path		int	true	"Payment ID"
//	@Success		200	{object}	APIResponse[[]paymentapp.HistoryRecordResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/payments/{id}/history [get]
func (h *PaymentHandler) History(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	records, err := h.paymentService.History(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, records)
}

// NextReference godoc
// @ID           getNextPaymentReference
//
//	@Summary		Preview the next transaction reference
//	@Description	Informational only; the reference is assigned when the payment is stored.
//	@Tags			payments
//	@Produce		json
//	@Success		200	{object}	APIResponse[paymentapp.NextReferenceResponse]
//	@Failure		500	{object}	ErrorResponse
//	@Router			/payments/next-reference [get]
func (h *PaymentHandler) NextReference(c *gin.Context) {
	next, err := h.paymentService.NextReference(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, next)
}

// ListByReservation godoc
// @ID           listReservationPayments
//
//	@Summary		List the payments of a reservation
//	@Tags			payments
//	@Produce		json
//	@Param			id	path		int	true	"Reservation ID"
//	@Success		200	{object}	APIResponse[[]paymentapp.PaymentResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/reservations/{id}/payments [get]
func (h *PaymentHandler) ListByReservation(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListByReservation(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payments)
}

// Amount godoc
// @ID           getReservationAmount
//
//	@Summary		Get the amount due for a reservation
//	@Description	Total price, completed payments and the outstanding balance
//	@Tags			payments
//	@Produce		json
//	@Param			id	path		int	true	"Reservation ID"
//	@Success		200	{object}	APIResponse[paymentapp.ReservationAmountResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/reservations/{id}/amount [get]
func (h *PaymentHandler) Amount(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	amount, err := h.paymentService.AmountForReservation(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, amount)
}
