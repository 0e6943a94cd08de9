package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "livestats-feed"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	ctx              context.Context
	meter            metric.Meter
	messages         metric.Int64Counter
	handlerErrors    metric.Int64Counter
	handlerLatencyMs metric.Float64Histogram
	unknownTypes     metric.Int64Counter
	actions          metric.Int64Counter
	listenerCalls    metric.Int64Counter
	listenerPanics   metric.Int64Counter
	connectAttempts  metric.Int64Counter
	connectErrors    metric.Int64Counter
	framesReceived   metric.Int64Counter
	frameSizeBytes   metric.Float64Histogram
	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("livestats-feed")
	ctx := context.Background()

	messages, err := meter.Int64Counter("feed_messages_total")
	if err != nil {
		return nil, err
	}
	handlerErrors, err := meter.Int64Counter("feed_handler_errors_total")
	if err != nil {
		return nil, err
	}
	handlerLatency, err := meter.Float64Histogram("feed_handler_duration_ms")
	if err != nil {
		return nil, err
	}
	unknownTypes, err := meter.Int64Counter("feed_unknown_message_types_total")
	if err != nil {
		return nil, err
	}
	actions, err := meter.Int64Counter("feed_actions_total")
	if err != nil {
		return nil, err
	}
	listenerCalls, err := meter.Int64Counter("feed_listener_invocations_total")
	if err != nil {
		return nil, err
	}
	listenerPanics, err := meter.Int64Counter("feed_listener_panics_total")
	if err != nil {
		return nil, err
	}
	connectAttempts, err := meter.Int64Counter("feed_connect_attempts_total")
	if err != nil {
		return nil, err
	}
	connectErrors, err := meter.Int64Counter("feed_connect_errors_total")
	if err != nil {
		return nil, err
	}
	framesReceived, err := meter.Int64Counter("feed_frames_total")
	if err != nil {
		return nil, err
	}
	frameSize, err := meter.Float64Histogram("feed_frame_bytes")
	if err != nil {
		return nil, err
	}
	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              ctx,
		meter:            meter,
		messages:         messages,
		handlerErrors:    handlerErrors,
		handlerLatencyMs: handlerLatency,
		unknownTypes:     unknownTypes,
		actions:          actions,
		listenerCalls:    listenerCalls,
		listenerPanics:   listenerPanics,
		connectAttempts:  connectAttempts,
		connectErrors:    connectErrors,
		framesReceived:   framesReceived,
		frameSizeBytes:   frameSize,
		requests:         requests,
		requestLatencyMs: requestLatency,
	}, nil
}

func (o *otelInstruments) recordMessage(messageType string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrMessageType, messageType)}
	o.recordCounter(o.messages, 1, attrs...)
	o.recordHistogram(o.handlerLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.handlerErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordUnknownType(messageType string) {
	if o == nil {
		return
	}
	o.recordCounter(o.unknownTypes, 1, attribute.String(AttrMessageType, messageType))
}

func (o *otelInstruments) recordAction(actionType string) {
	if o == nil {
		return
	}
	o.recordCounter(o.actions, 1, attribute.String(AttrActionType, actionType))
}

func (o *otelInstruments) recordListener(messageType string, panicked bool) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrMessageType, messageType)}
	o.recordCounter(o.listenerCalls, 1, attrs...)
	if panicked {
		o.recordCounter(o.listenerPanics, 1, attrs...)
	}
}

func (o *otelInstruments) recordConnect(err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.connectAttempts, 1)
	if err != nil {
		o.recordCounter(o.connectErrors, 1)
	}
}

func (o *otelInstruments) recordFrame(bytes int) {
	if o == nil {
		return
	}
	o.recordCounter(o.framesReceived, 1)
	o.recordHistogram(o.frameSizeBytes, float64(bytes))
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
