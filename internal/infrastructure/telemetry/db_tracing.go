package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for query spans
type DBTracingConfig struct {
	DBName             string
	SlowQueryThreshold time.Duration
	// IncludeQueryVariables puts bound values into db.statement. Keep it
	// off outside development: values include client emails and names.
	IncludeQueryVariables bool
}

type contextKey string

const queryStartKey contextKey = "telemetry_query_start"

// InstrumentDB registers the otelgorm plugin on db and annotates every query
// span with its table, affected rows, error status and a slow_query marker.
func InstrumentDB(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	// Registered first so the annotator's after hooks run while the otelgorm
	// span is still open.
	a := &spanAnnotator{slowThreshold: cfg.SlowQueryThreshold}
	if err := a.register(db); err != nil {
		return err
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
	if !cfg.IncludeQueryVariables {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("Database tracing enabled",
			zap.String("db_name", cfg.DBName),
			zap.Duration("slow_query_threshold", cfg.SlowQueryThreshold),
		)
	}
	return nil
}

type spanAnnotator struct {
	slowThreshold time.Duration
}

func (a *spanAnnotator) register(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Create().Before("gorm:create").Register("telemetry:before_create", a.before),
		cb.Query().Before("gorm:query").Register("telemetry:before_query", a.before),
		cb.Update().Before("gorm:update").Register("telemetry:before_update", a.before),
		cb.Delete().Before("gorm:delete").Register("telemetry:before_delete", a.before),
		cb.Row().Before("gorm:row").Register("telemetry:before_row", a.before),
		cb.Raw().Before("gorm:raw").Register("telemetry:before_raw", a.before),
		cb.Create().After("gorm:create").Register("telemetry:after_create", a.after),
		cb.Query().After("gorm:query").Register("telemetry:after_query", a.after),
		cb.Update().After("gorm:update").Register("telemetry:after_update", a.after),
		cb.Delete().After("gorm:delete").Register("telemetry:after_delete", a.after),
		cb.Row().After("gorm:row").Register("telemetry:after_row", a.after),
		cb.Raw().After("gorm:raw").Register("telemetry:after_raw", a.after),
	)
}

func (a *spanAnnotator) before(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey, time.Now())
	}
}

func (a *spanAnnotator) after(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	start, ok := ctx.Value(queryStartKey).(time.Time)
	if !ok || a.slowThreshold <= 0 {
		return
	}
	if elapsed := time.Since(start); elapsed > a.slowThreshold {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
		span.AddEvent("slow_query", trace.WithAttributes(
			attribute.Int64("duration_ms", elapsed.Milliseconds()),
			attribute.Int64("threshold_ms", a.slowThreshold.Milliseconds()),
		))
	}
}
