package models

// All returns every model in dependency order. Tests pass it to AutoMigrate;
// production schemas come from the SQL migrations.
func All() []any {
	return []any{
		&ClientModel{},
		&PropertyModel{},
		&ReservationModel{},
		&PaymentModel{},
		&PaymentHistoryModel{},
		&ValuationModel{},
	}
}
