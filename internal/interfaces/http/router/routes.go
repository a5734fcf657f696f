package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rentals/backend/internal/interfaces/http/handler"
)

// Handlers bundles the HTTP handlers served under the API prefix.
// PaymentGuard, when set, runs before payment creation (idempotency).
type Handlers struct {
	System       *handler.SystemHandler
	Clients      *handler.ClientHandler
	Properties   *handler.PropertyHandler
	Reservations *handler.ReservationHandler
	Payments     *handler.PaymentHandler
	Valuations   *handler.ValuationHandler
	PaymentGuard gin.HandlerFunc
}

// APIGroups returns the rentals API route table, one group per resource
func APIGroups(h Handlers) []*DomainGroup {
	system := NewDomainGroup("system", "/").
		GET("/ping", h.System.Ping).
		GET("/system/info", h.System.GetSystemInfo)

	clients := NewDomainGroup("clients", "/clients").
		POST("", h.Clients.Create).
		GET("", h.Clients.List).
		GET("/lookup", h.Clients.Lookup).
		PUT("/by-email", h.Clients.UpdateByEmail).
		DELETE("/by-email", h.Clients.DeleteByEmail).
		GET("/:id", h.Clients.GetByID).
		PUT("/:id", h.Clients.Update).
		DELETE("/:id", h.Clients.Delete).
		GET("/:id/reservations", h.Clients.ListReservations)

	properties := NewDomainGroup("properties", "/properties").
		POST("", h.Properties.Create).
		GET("", h.Properties.List).
		GET("/ids", h.Properties.ListIDs).
		GET("/lookup", h.Properties.Lookup).
		PUT("/by-name", h.Properties.UpdateByName).
		DELETE("/by-name", h.Properties.DeleteByName).
		GET("/:id", h.Properties.GetByID).
		PUT("/:id", h.Properties.Update).
		PATCH("/:id/status", h.Properties.ChangeStatus).
		DELETE("/:id", h.Properties.Delete).
		GET("/:id/reservations", h.Properties.ListReservations)

	reservations := NewDomainGroup("reservations", "/reservations").
		POST("", h.Reservations.Create).
		GET("", h.Reservations.List).
		GET("/ids", h.Reservations.ListIDs).
		GET("/:id", h.Reservations.GetByID).
		PUT("/:id", h.Reservations.Update).
		DELETE("/:id", h.Reservations.Delete).
		POST("/:id/confirm", h.Reservations.Confirm).
		POST("/:id/cancel", h.Reservations.Cancel).
		GET("/:id/payments", h.Payments.ListByReservation).
		GET("/:id/amount", h.Payments.Amount).
		GET("/:id/valuations", h.Valuations.ListByReservation)

	createPayment := []gin.HandlerFunc{h.Payments.Create}
	if h.PaymentGuard != nil {
		createPayment = []gin.HandlerFunc{h.PaymentGuard, h.Payments.Create}
	}
	payments := NewDomainGroup("payments", "/payments").
		POST("", createPayment...).
		GET("", h.Payments.List).
		GET("/next-reference", h.Payments.NextReference).
		GET("/:id", h.Payments.GetByID).
		PUT("/:id", h.Payments.Update).
		DELETE("/:id", h.Payments.Delete).
		GET("/:id/history", h.Payments.History)

	valuations := NewDomainGroup("valuations", "/valuations").
		POST("", h.Valuations.Create).
		GET("", h.Valuations.List).
		GET("/:id", h.Valuations.GetByID).
		PUT("/:id", h.Valuations.Update).
		DELETE("/:id", h.Valuations.Delete)

	return []*DomainGroup{system, clients, properties, reservations, payments, valuations}
}

// RegisterAPI mounts the rentals API on r
func (r *Router) RegisterAPI(h Handlers) *Router {
	for _, group := range APIGroups(h) {
		r.Register(group)
	}
	return r
}
