package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "ASC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField resolves an API sort field to its column through a
// whitelist. Returns defaultColumn if the input is empty or not allowed.
func ValidateSortField(sortField string, columns map[string]string, defaultColumn string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultColumn
	}
	if col, ok := columns[trimmed]; ok {
		return col
	}
	return defaultColumn
}

// orderClause builds a whitelisted ORDER BY expression
func orderClause(field, dir string, columns map[string]string, defaultColumn string) string {
	return ValidateSortField(field, columns, defaultColumn) + " " + ValidateSortOrder(dir)
}

// ClientSortFields maps client sort fields to clientes columns
var ClientSortFields = map[string]string{
	"id":            "id_cliente",
	"first_name":    "nombre",
	"last_name":     "apellidos",
	"email":         "email",
	"country":       "pais",
	"registered_at": "fecha_registro",
}

// PropertySortFields maps property sort fields to propiedades columns
var PropertySortFields = map[string]string{
	"id":            "id_propiedad",
	"name":          "nombre",
	"city":          "ciudad",
	"country":       "pais",
	"nightly_price": "precio_noche",
	"capacity":      "capacidad",
	"status":        "estado_propiedad",
}

// ReservationSortFields maps reservation sort fields to reservas columns
var ReservationSortFields = map[string]string{
	"id":          "id_reserva",
	"start_date":  "fecha_inicio",
	"end_date":    "fecha_fin",
	"status":      "estado",
	"total_price": "precio_total",
}

// PaymentSortFields maps payment sort fields to pagos columns
var PaymentSortFields = map[string]string{
	"id":        "id_pago",
	"paid_at":   "fecha_pago",
	"amount":    "monto",
	"status":    "estado_pago",
	"reference": "referencia_transaccion",
}

// ValuationSortFields maps valuation sort fields to valoraciones columns
var ValuationSortFields = map[string]string{
	"id":        "id_valoracion",
	"score":     "puntuacion",
	"valued_at": "fecha_valoracion",
}
