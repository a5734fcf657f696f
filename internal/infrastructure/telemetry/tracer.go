// Package telemetry wires OpenTelemetry traces, metrics and logs and the
// Pyroscope profiler into the rentals backend.
//
// With telemetry disabled nothing is exported and the global OpenTelemetry
// providers stay no-ops, so instrumented code needs no guards.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grafana/pyroscope-go"
	otelpyroscope "github.com/grafana/otel-profiling-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"
)

// ServiceVersion is reported as service.version on every signal
const ServiceVersion = "1.0.0"

// shutdownTimeout bounds the flush of each provider on Shutdown
const shutdownTimeout = 10 * time.Second

// Config holds telemetry configuration.
type Config struct {
	Enabled           bool
	ServiceName       string
	CollectorEndpoint string
	Insecure          bool
	SamplingRatio     float64
	MetricsInterval   time.Duration
	LogsEnabled       bool
	Profiling         ProfilerConfig
}

// Providers owns the SDK providers started by Setup
type Providers struct {
	config   Config
	logger   *zap.Logger
	tracer   *sdktrace.TracerProvider
	meter    *sdkmetric.MeterProvider
	logs     *sdklog.LoggerProvider
	profiler *pyroscope.Profiler
}

// Setup starts the OTLP exporters and registers the global providers.
// On failure every provider already started is shut down again.
func Setup(ctx context.Context, cfg Config, logger *zap.Logger) (*Providers, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Providers{config: cfg, logger: logger.Named("telemetry")}

	if !cfg.Enabled {
		p.logger.Info("Telemetry disabled, using no-op providers")
		return p, nil
	}

	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	traceOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		traceOpts = append(traceOpts, otlptracegrpc.WithInsecure())
	}
	spanExporter, err := otlptracegrpc.New(ctx, traceOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}
	p.tracer = newTracerProvider(sdktrace.NewBatchSpanProcessor(spanExporter), res, cfg.SamplingRatio)

	reader, err := newPeriodicReader(ctx, cfg)
	if err != nil {
		return nil, p.abort(err)
	}
	p.meter = newMeterProvider(reader, res)

	if cfg.LogsEnabled {
		exporter, err := newLogExporter(ctx, cfg)
		if err != nil {
			return nil, p.abort(err)
		}
		p.logs = newLoggerProvider(sdklog.NewBatchProcessor(exporter), res)
	}

	if cfg.Profiling.Enabled {
		if cfg.Profiling.ApplicationName == "" {
			cfg.Profiling.ApplicationName = cfg.ServiceName
		}
		p.profiler, err = startProfiler(cfg.Profiling, p.logger)
		if err != nil {
			return nil, p.abort(err)
		}
	}

	p.register()

	p.logger.Info("Telemetry initialized",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Float64("sampling_ratio", cfg.SamplingRatio),
		zap.Bool("logs", p.logs != nil),
		zap.Bool("profiling", p.profiler != nil),
	)
	return p, nil
}

// register installs the providers as the OpenTelemetry globals. With the
// profiler running, spans are wrapped so CPU profiles carry the span ID.
func (p *Providers) register() {
	if p.profiler != nil {
		otel.SetTracerProvider(otelpyroscope.NewTracerProvider(p.tracer))
	} else {
		otel.SetTracerProvider(p.tracer)
	}
	otel.SetMeterProvider(p.meter)
	if p.logs != nil {
		global.SetLoggerProvider(p.logs)
	}
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

// Enabled reports whether exporters are running
func (p *Providers) Enabled() bool {
	return p.tracer != nil
}

// Meter returns a named meter from the active meter provider
func (p *Providers) Meter(name string) metric.Meter {
	if p.meter == nil {
		return otel.GetMeterProvider().Meter(name)
	}
	return p.meter.Meter(name)
}

// Shutdown flushes and stops every provider. It is safe to call on a
// disabled or already stopped instance.
func (p *Providers) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	if p.tracer != nil {
		errs = append(errs, wrapShutdown("tracer", p.tracer.Shutdown(ctx)))
		p.tracer = nil
	}
	if p.meter != nil {
		errs = append(errs, wrapShutdown("meter", p.meter.Shutdown(ctx)))
		p.meter = nil
	}
	if p.logs != nil {
		errs = append(errs, wrapShutdown("logger", p.logs.Shutdown(ctx)))
		p.logs = nil
	}
	if p.profiler != nil {
		errs = append(errs, wrapShutdown("profiler", p.profiler.Stop()))
		p.profiler = nil
	}

	err := errors.Join(errs...)
	if err != nil {
		p.logger.Error("Telemetry shutdown failed", zap.Error(err))
	}
	return err
}

// abort stops whatever Setup already started and returns cause
func (p *Providers) abort(cause error) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return errors.Join(cause, p.Shutdown(ctx))
}

func wrapShutdown(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to shutdown %s provider: %w", what, err)
}

func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

func newTracerProvider(processor sdktrace.SpanProcessor, res *resource.Resource, ratio float64) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(processor),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(ratio)),
	)
}

// sampler honours the parent decision and samples root spans by ratio
func sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}
