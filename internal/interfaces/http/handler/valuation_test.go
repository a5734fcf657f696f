package handler

import (
	"net/http"
	"strings"
	"testing"

	valuationapp "github.com/rentals/backend/internal/application/valuation"
	"github.com/rentals/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuationHandler_Create(t *testing.T) {
	api := newTestAPI(t)
	reservationID := api.seedBooking()

	w := api.do(http.MethodPost, path("/valuations"), map[string]any{
		"reservation_id": reservationID,
		"score":          5,
		"comment":        "Todo perfecto",
		"anonymous":      true,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	got := decode[valuationapp.ValuationResponse](t, w).Data
	assert.Equal(t, 5, got.Score)
	assert.True(t, got.Anonymous)
	assert.False(t, got.ValuedAt.IsZero())

	w = api.do(http.MethodGet, path("/valuations/%d", got.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Todo perfecto", decode[valuationapp.ValuationResponse](t, w).Data.Comment)
}

func TestValuationHandler_Create_Rejected(t *testing.T) {
	api := newTestAPI(t)
	reservationID := api.seedBooking()

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantCode   string
	}{
		{"score below range", map[string]any{"reservation_id": reservationID, "score": 0}, http.StatusBadRequest, dto.ErrCodeValidation},
		{"score above range", map[string]any{"reservation_id": reservationID, "score": 6}, http.StatusBadRequest, dto.ErrCodeValidation},
		{"comment too long", map[string]any{"reservation_id": reservationID, "score": 3, "comment": strings.Repeat("a", 501)}, http.StatusBadRequest, dto.ErrCodeValidation},
		{"unknown reservation", map[string]any{"reservation_id": 999, "score": 3}, http.StatusNotFound, dto.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodPost, path("/valuations"), tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.wantCode, errorCode(t, w))
		})
	}
}

func TestValuationHandler_ListByReservation(t *testing.T) {
	api := newTestAPI(t)
	first := api.seedBooking()
	second := api.seedReservation(api.seedClient("bea@example.com"), api.seedProperty("Villa Sol"))
	for _, body := range []map[string]any{
		{"reservation_id": first, "score": 4},
		{"reservation_id": first, "score": 2},
		{"reservation_id": second, "score": 5},
	} {
		api.mustCreate(path("/valuations"), body)
	}

	w := api.do(http.MethodGet, path("/reservations/%d/valuations", first), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]valuationapp.ValuationResponse](t, w).Data, 2)

	w = api.do(http.MethodGet, path("/valuations?order_by=score&order_dir=desc"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[[]valuationapp.ValuationResponse](t, w)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, 5, resp.Data[0].Score)
	assert.Equal(t, int64(3), resp.Meta.Total)
}

func TestValuationHandler_UpdateAndDelete(t *testing.T) {
	api := newTestAPI(t)
	reservationID := api.seedBooking()
	id := api.mustCreate(path("/valuations"), map[string]any{"reservation_id": reservationID, "score": 2, "comment": "Ruidoso"})

	w := api.do(http.MethodPut, path("/valuations/%d", id), map[string]any{"score": 3})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[valuationapp.ValuationResponse](t, w).Data
	assert.Equal(t, 3, got.Score)
	assert.Equal(t, "Ruidoso", got.Comment)

	w = api.do(http.MethodPut, path("/valuations/%d", id), map[string]any{"reservation_id": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, path("/valuations/%d", id), nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, path("/valuations/%d", id), nil).Code)
}
