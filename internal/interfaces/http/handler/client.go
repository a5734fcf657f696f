package handler

import (
	"github.com/gin-gonic/gin"
	clientapp "github.com/rentals/backend/internal/application/client"
	reservationapp "github.com/rentals/backend/internal/application/reservation"
)

// ClientHandler handles client-related API endpoints
type ClientHandler struct {
	BaseHandler
	clientService      *clientapp.ClientService
	reservationService *reservationapp.ReservationService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *clientapp.ClientService, reservationService *reservationapp.ReservationService) *ClientHandler {
	return &ClientHandler{
		clientService:      clientService,
		reservationService: reservationService,
	}
}

// Create godoc
// @ID           createClient
//
//	@Summary		Register a client
//	@Description	Register a new guest. The email is normalized to lower case and must be unique.
//	@Tags			clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clientapp.CreateClientRequest	true	"Client registration request"
//	@Success		201		{object}	APIResponse[clientapp.ClientResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req clientapp.CreateClientRequest
	if !h.bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, client)
}

// GetByID godoc
// @ID           getClientById
//
//	@Summary		Get client by ID
//	@Tags			clients
//	@Produce		json
//	@Param			id	path		int	true	"Client ID"
//	@Success		200	{object}	APIResponse[clientapp.ClientResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/clients/{id} [get]
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, client)
}

// List godoc
// @ID           listClients
//
//	@Summary		List clients
//	@Description	Paginated list of clients. search matches name or email.
//	@Tags			clients
//	@Produce		json
//	@Param			search		query		string	false	"Search term"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)	maximum(100)
//	@Param			order_by	query		string	false	"Sort field"	Enums(id, first_name, last_name, email, country, registered_at)
//	@Param			order_dir	query		string	false	"Sort order"	Enums(asc, desc)
//	@Success		200			{object}	APIResponse[[]clientapp.ClientResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	var filter clientapp.ClientListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	clients, total, err := h.clientService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := pageOf(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, clients, total, page, pageSize)
}

// Lookup godoc
// @ID           lookupClientByEmail
//
//	@Summary		Resolve a client ID by email
//	@Tags			clients
//	@Produce		json
//	@Param			email	query		string	true	"Client email"
//	@Success		200		{object}	APIResponse[LookupData]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/clients/lookup [get]
func (h *ClientHandler) Lookup(c *gin.Context) {
	email, ok := h.requiredQuery(c, "email")
	if !ok {
		return
	}

	id, err := h.clientService.FindIDByEmail(c.Request.Context(), email)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, LookupData{ID: id})
}

// Update godoc
// @ID           updateClient
//
//	@Summary		Update a client
//	@Description	Omitted fields keep their current value
//	@Tags			clients
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Client ID"
//	@Param			request	body		clientapp.UpdateClientRequest	true	"Client update request"
//	@Success		200		{object}	APIResponse[clientapp.ClientResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req clientapp.UpdateClientRequest
	if !h.bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, client)
}

// Delete godoc
// @ID           deleteClient
//
//	@Summary		Delete a client
//	@Description	A client that still has reservations cannot be deleted
//	@Tags			clients
//	@Param			id	path	int	true	"Client ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// UpdateByEmail godoc
// @ID           updateClientByEmail
//
//	@Summary		Update a client addressed by email
//	@Description	Omitted fields keep their current value
//	@Tags			clients
//	@Accept			json
//	@Produce		json
//	@Param			email	query		string							true	"Client email"
//	@Param			request	body		clientapp.UpdateClientRequest	true	"Client update request"
//	@Success		200		{object}	APIResponse[clientapp.ClientResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/clients/by-email [put]
func (h *ClientHandler) UpdateByEmail(c *gin.Context) {
	email, ok := h.requiredQuery(c, "email")
	if !ok {
		return
	}
	var req clientapp.UpdateClientRequest
	if !h.bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.UpdateByEmail(c.Request.Context(), email, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, client)
}

// DeleteByEmail godoc
// @ID           deleteClientByEmail
//
//	@Summary		Delete a client addressed by email
//	@Tags			clients
//	@Param			email	query	string	true	"Client email"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/clients/by-email [delete]
func (h *ClientHandler) DeleteByEmail(c *gin.Context) {
	email, ok := h.requiredQuery(c, "email")
	if !ok {
		return
	}

	if err := h.clientService.DeleteByEmail(c.Request.Context(), email); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListReservations godoc
// @ID           listClientReservations
//
//	@Summary		List the reservations of a client
//	@Tags			clients
//	@Produce		json
//	@Param			id	path		int	true	"Client ID"
//	@Success		200	{object}	APIResponse[[]reservationapp.ReservationResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/clients/{id}/reservations [get]
func (h *ClientHandler) ListReservations(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListByClient(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reservations)
}
