package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	clientapp "github.com/rentals/backend/internal/application/client"
	paymentapp "github.com/rentals/backend/internal/application/payment"
	propertyapp "github.com/rentals/backend/internal/application/property"
	reservationapp "github.com/rentals/backend/internal/application/reservation"
	valuationapp "github.com/rentals/backend/internal/application/valuation"
	"github.com/rentals/backend/internal/infrastructure/persistence"
	"github.com/rentals/backend/internal/infrastructure/persistence/models"
	"github.com/rentals/backend/internal/interfaces/http/dto"
	"github.com/rentals/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// testAPI is the rentals API served from a private in-memory SQLite database
type testAPI struct {
	t      *testing.T
	engine *gin.Engine
	db     *persistence.Database
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	database, err := persistence.NewDatabaseFromDialector(
		sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), nil)
	require.NoError(t, err)

	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.DB.AutoMigrate(models.All()...))

	log := zap.NewNop()
	clientRepo := persistence.NewGormClientRepository(database.DB)
	propertyRepo := persistence.NewGormPropertyRepository(database.DB)
	reservationRepo := persistence.NewGormReservationRepository(database.DB)
	paymentRepo := persistence.NewGormPaymentRepository(database.DB)
	valuationRepo := persistence.NewGormValuationRepository(database.DB)

	reservationService := reservationapp.NewReservationService(reservationRepo, clientRepo, propertyRepo, log)
	clients := NewClientHandler(clientapp.NewClientService(clientRepo), reservationService)
	properties := NewPropertyHandler(propertyapp.NewPropertyService(propertyRepo), reservationService)
	reservations := NewReservationHandler(reservationService)
	payments := NewPaymentHandler(paymentapp.NewPaymentService(paymentRepo, reservationRepo, log))
	valuations := NewValuationHandler(valuationapp.NewValuationService(valuationRepo, reservationRepo))
	system := NewSystemHandler("rentals-test", "1.0.0", database)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.GET("/health", system.Health)

	api := engine.Group("/api/v1")
	api.GET("/ping", system.Ping)
	api.GET("/system/info", system.GetSystemInfo)

	api.POST("/clients", clients.Create)
	api.GET("/clients", clients.List)
	api.GET("/clients/lookup", clients.Lookup)
	api.PUT("/clients/by-email", clients.UpdateByEmail)
	api.DELETE("/clients/by-email", clients.DeleteByEmail)
	api.GET("/clients/:id", clients.GetByID)
	api.PUT("/clients/:id", clients.Update)
	api.DELETE("/clients/:id", clients.Delete)
	api.GET("/clients/:id/reservations", clients.ListReservations)

	api.POST("/properties", properties.Create)
	api.GET("/properties", properties.List)
	api.GET("/properties/ids", properties.ListIDs)
	api.GET("/properties/lookup", properties.Lookup)
	api.PUT("/properties/by-name", properties.UpdateByName)
	api.DELETE("/properties/by-name", properties.DeleteByName)
	api.GET("/properties/:id", properties.GetByID)
	api.PUT("/properties/:id", properties.Update)
	api.PATCH("/properties/:id/status", properties.ChangeStatus)
	api.DELETE("/properties/:id", properties.Delete)
	api.GET("/properties/:id/reservations", properties.ListReservations)

	api.POST("/reservations", reservations.Create)
	api.GET("/reservations", reservations.List)
	api.GET("/reservations/ids", reservations.ListIDs)
	api.GET("/reservations/:id", reservations.GetByID)
	api.PUT("/reservations/:id", reservations.Update)
	api.DELETE("/reservations/:id", reservations.Delete)
	api.POST("/reservations/:id/confirm", reservations.Confirm)
	api.POST("/reservations/:id/cancel", reservations.Cancel)
	api.GET("/reservations/:id/payments", payments.ListByReservation)
	api.GET("/reservations/:id/amount", payments.Amount)
	api.GET("/reservations/:id/valuations", valuations.ListByReservation)

	api.POST("/payments", payments.Create)
	api.GET("/payments", payments.List)
	api.GET("/payments/next-reference", payments.NextReference)
	api.GET("/payments/:id", payments.GetByID)
	api.PUT("/payments/:id", payments.Update)
	api.DELETE("/payments/:id", payments.Delete)
	api.GET("/payments/:id/history", payments.History)

	api.POST("/valuations", valuations.Create)
	api.GET("/valuations", valuations.List)
	api.GET("/valuations/:id", valuations.GetByID)
	api.PUT("/valuations/:id", valuations.Update)
	api.DELETE("/valuations/:id", valuations.Delete)

	return &testAPI{t: t, engine: engine, db: database}
}

// do sends a request and returns the recorder. body is marshalled to JSON
// unless it is a string.
func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// envelope is the decoded response with a typed data field
type envelope[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data"`
	Error   *dto.ErrorInfo `json:"error"`
	Meta    *dto.Meta      `json:"meta"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var out envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// errorCode returns the error code of a failed response
func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decode[any](t, w)
	require.NotNil(t, resp.Error, w.Body.String())
	return resp.Error.Code
}

// mustCreate posts body to path, requires 201 and returns the new record ID
func (a *testAPI) mustCreate(path string, body any) int64 {
	a.t.Helper()
	w := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[struct {
		ID int64 `json:"id"`
	}](a.t, w).Data.ID
}

func (a *testAPI) seedClient(email string) int64 {
	return a.mustCreate("/api/v1/clients", map[string]any{
		"first_name": "Lucía",
		"last_name":  "García",
		"email":      email,
		"phone":      "+34600111222",
		"country":    "España",
	})
}

func (a *testAPI) seedProperty(name string) int64 {
	return a.mustCreate("/api/v1/properties", map[string]any{
		"name":          name,
		"address":       "Calle Mayor 1",
		"city":          "Valencia",
		"country":       "España",
		"nightly_price": "100.00",
		"capacity":      4,
		"description":   "Piso junto a la playa",
	})
}

func (a *testAPI) seedReservation(clientID, propertyID int64) int64 {
	return a.mustCreate("/api/v1/reservations", map[string]any{
		"client_id":   clientID,
		"property_id": propertyID,
		"start_date":  "2026-07-01",
		"end_date":    "2026-07-03",
		"guests":      2,
	})
}

// seedBooking creates a client, a property and a two night reservation
func (a *testAPI) seedBooking() int64 {
	return a.seedReservation(a.seedClient("lucia@example.com"), a.seedProperty("Casa Azul"))
}

func path(format string, args ...any) string {
	return "/api/v1" + fmt.Sprintf(format, args...)
}
