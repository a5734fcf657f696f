// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Table and column names follow the existing rentals schema (clientes,
// propiedades, reservas, pagos, historico_pagos, valoraciones). Enumerations
// are stored lowercase and parsed back into domain values on read.
package models
