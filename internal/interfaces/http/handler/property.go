package handler

import (
	"github.com/gin-gonic/gin"
	propertyapp "github.com/rentals/backend/internal/application/property"
	reservationapp "github.com/rentals/backend/internal/application/reservation"
)

// PropertyHandler handles property-related API endpoints
type PropertyHandler struct {
	BaseHandler
	propertyService    *propertyapp.PropertyService
	reservationService *reservationapp.ReservationService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *propertyapp.PropertyService, reservationService *reservationapp.ReservationService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, reservationService: reservationService}
}

// Create godoc
// @ID           createProperty
//
//	@Summary		Register a property
//	@Description	Status defaults to disponible. The nightly price must be positive.
//	@Tags			properties
//	@Accept			json
//	@Produce		json
//	@Param			request	body		propertyapp.CreatePropertyRequest	true	"Property creation request"
//	@Success		201		{object}	APIResponse[propertyapp.PropertyResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var req propertyapp.CreatePropertyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, property)
}

// GetByID godoc
// @ID           getPropertyById
//
//	@Summary		Get property by ID
//	@Tags			properties
//	@Produce		json
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{object}	APIResponse[propertyapp.PropertyResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/properties/{id} [get]
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	property, err := h.propertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, property)
}

// List godoc
// @ID           listProperties
//
//	@Summary		List properties
//	@Tags			properties
//	@Produce		json
//	@Param			search		query		string	false	"Search term (name, city, country)"
//	@Param			page		query		int		false	"Page number"	default(1)
//	@Param			page_size	query		int		false	"Page size"		default(20)	maximum(100)
//	@Param			order_by	query		string	false	"Sort field"	Enums(id, name, city, country, nightly_price, capacity, status)
//	@Param			order_dir	query		string	false	"Sort order"	Enums(asc, desc)
//	@Success		200			{object}	APIResponse[[]propertyapp.PropertyResponse]
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	var filter propertyapp.PropertyListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	properties, total, err := h.propertyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := pageOf(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, properties, total, page, pageSize)
}

// ListIDs godoc
// @ID           listPropertyIds
//
//	@Summary		List every property ID
//	@Tags			properties
//	@Produce		json
//	@Success		200	{object}	APIResponse[[]int64]
//	@Failure		500	{object}	ErrorResponse
//	@Router			/properties/ids [get]
func (h *PropertyHandler) ListIDs(c *gin.Context) {
	ids, err := h.propertyService.ListIDs(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ids)
}

// Lookup godoc
// @ID           lookupPropertyByName
//
//	@Summary		Resolve a property ID by name
//	@Tags			properties
//	@Produce		json
//	@Param			name	query		string	true	"Property name"
//	@Success		200		{object}	APIResponse[LookupData]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/properties/lookup [get]
func (h *PropertyHandler) Lookup(c *gin.Context) {
	name, ok := h.requiredQuery(c, "name")
	if !ok {
		return
	}

	id, err := h.propertyService.FindIDByName(c.Request.Context(), name)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, LookupData{ID: id})
}

// Update godoc
// @ID           updateProperty
//
//	@Summary		Update a property
//	@Description	Omitted fields keep their current value
//	@Tags			properties
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Property ID"
//	@Param			request	body		propertyapp.UpdatePropertyRequest	true	"Property update request"
//	@Success		200		{object}	APIResponse[propertyapp.PropertyResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/properties/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req propertyapp.UpdatePropertyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, property)
}

// ChangeStatus godoc
// @ID           changePropertyStatus
//
//	@Summary		Change the availability status of a property
//	@Tags			properties
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Property ID"
//	@Param			request	body		propertyapp.ChangeStatusRequest	true	"New status"
//	@Success		200		{object}	APIResponse[propertyapp.PropertyResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/properties/{id}/status [patch]
func (h *PropertyHandler) ChangeStatus(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req propertyapp.ChangeStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	property, err := h.propertyService.ChangeStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, property)
}

// Delete godoc
// @ID           deleteProperty
//
//	@Summary		Delete a property
//	@Description	A property that still has reservations cannot be deleted
//	@Tags			properties
//	@Param			id	path	int	true	"Property ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// UpdateByName godoc
// @ID           updatePropertyByName
//
//	@Summary		Update a property addressed by name
//	@Description	Omitted fields keep their current value
//	@Tags			properties
//	@Accept			json
//	@Produce		json
//	@Param			name	query		string							true	"Property name"
//	@Param			request	body		propertyapp.UpdatePropertyRequest	true	"Property update request"
//	@Success		200		{object}	APIResponse[propertyapp.PropertyResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/properties/by-name [put]
func (h *PropertyHandler) UpdateByName(c *gin.Context) {
	name, ok := h.requiredQuery(c, "name")
	if !ok {
		return
	}
	var req propertyapp.UpdatePropertyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	property, err := h.propertyService.UpdateByName(c.Request.Context(), name, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, property)
}

// DeleteByName godoc
// @ID           deletePropertyByName
//
//	@Summary		Delete a property addressed by name
//	@Tags			properties
//	@Param			name	query	string	true	"Property name"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/properties/by-name [delete]
func (h *PropertyHandler) DeleteByName(c *gin.Context) {
	name, ok := h.requiredQuery(c, "name")
	if !ok {
		return
	}

	if err := h.propertyService.DeleteByName(c.Request.Context(), name); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListReservations godoc
// @ID           listPropertyReservations
//
//	@Summary		List the reservations of a property
//	@Tags			properties
//	@Produce		json
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{object}	APIResponse[[]reservationapp.ReservationResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/properties/{id}/reservations [get]
func (h *PropertyHandler) ListReservations(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListByProperty(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reservations)
}
