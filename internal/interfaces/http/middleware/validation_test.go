package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rentals/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Guests   int    `json:"num_personas" binding:"required,min=1,max=20"`
	Status   string `json:"estado" binding:"omitempty,oneof=pendiente confirmada cancelada"`
	Start    string `json:"fecha_inicio" binding:"omitempty,datetime=2006-01-02"`
	Nickname string `json:"nickname" binding:"omitempty,min=3"`
}

func validationRouter() *gin.Engine {
	SetupValidator()

	router := gin.New()
	router.Use(RequestID())
	router.POST("/bookings", func(c *gin.Context) {
		var req bookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(req))
	})
	return router
}

func postBooking(t *testing.T, body string) (*httptest.ResponseRecorder, dto.ErrorInfo) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, "req-validation")
	w := httptest.NewRecorder()
	validationRouter().ServeHTTP(w, req)
	if w.Code == http.StatusOK {
		return w, dto.ErrorInfo{}
	}
	return w, decodeError(t, w)
}

func detailsByField(info dto.ErrorInfo) map[string]string {
	out := map[string]string{}
	for _, d := range info.Details {
		out[d.Field] = d.Message
	}
	return out
}

func TestHandleValidationError_FieldErrors(t *testing.T) {
	w, info := postBooking(t, `{"email":"not-an-email","num_personas":25,"estado":"lost","fecha_inicio":"01/02/2026","nickname":"ab"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidation, info.Code)
	assert.Equal(t, "Request validation failed", info.Message)
	assert.Equal(t, "req-validation", info.RequestID)

	fields := detailsByField(info)
	assert.Equal(t, "Invalid email format", fields["email"])
	assert.Equal(t, "Must be at most 20", fields["num_personas"])
	assert.Equal(t, "Must be one of: pendiente confirmada cancelada", fields["estado"])
	assert.Equal(t, "Must be a date formatted as 2006-01-02", fields["fecha_inicio"])
	assert.Equal(t, "Must be at least 3 characters", fields["nickname"])
}

func TestHandleValidationError_Required(t *testing.T) {
	_, info := postBooking(t, `{}`)

	fields := detailsByField(info)
	assert.Equal(t, "This field is required", fields["email"])
	assert.Equal(t, "This field is required", fields["num_personas"])
}

func TestHandleValidationError_TypeMismatch(t *testing.T) {
	w, info := postBooking(t, `{"email":"ana@example.com","num_personas":"two"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, info.Details, 1)
	assert.Equal(t, "num_personas", info.Details[0].Field)
	assert.Equal(t, "Must be a int", info.Details[0].Message)
}

func TestHandleValidationError_MalformedJSON(t *testing.T) {
	w, info := postBooking(t, `{"email":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, info.Details, 1)
	assert.Equal(t, "body", info.Details[0].Field)
}

func TestHandleValidationError_ValidInput(t *testing.T) {
	w, _ := postBooking(t, `{"email":"ana@example.com","num_personas":2,"estado":"pendiente","fecha_inicio":"2026-07-01"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFormatValidationErrors_PlainError(t *testing.T) {
	resp := FormatValidationErrors(errors.New("boom"), "req-1")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"field":"body"`)
	assert.Contains(t, string(raw), `"request_id":"req-1"`)
}
