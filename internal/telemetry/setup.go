package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	sloglogrus "github.com/samber/slog-logrus/v2"
	slogmulti "github.com/samber/slog-multi"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/exporters/autoexport"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	logglobal "go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"golang.org/x/sync/errgroup"
)

type Client struct {
	log *slog.Logger

	tracerProvider *trace.TracerProvider
	metricProvider *metric.MeterProvider
	loggerProvider *log.LoggerProvider
}

func (client *Client) Flush(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if client.metricProvider != nil {
		g.Go(func() error {
			return client.metricProvider.ForceFlush(ctx)
		})
	}
	if client.loggerProvider != nil {
		g.Go(func() error {
			return client.loggerProvider.ForceFlush(ctx)
		})
	}
	if client.tracerProvider != nil {
		g.Go(func() error {
			return client.tracerProvider.ForceFlush(ctx)
		})
	}

	return g.Wait()
}

func (client *Client) Shutdown(ctx context.Context) {
	if client.metricProvider != nil {
		err := client.metricProvider.Shutdown(ctx)
		if err != nil {
			client.log.ErrorContext(ctx, "error shutting down metric provider", "error", err.Error())
		}
	}
	if client.tracerProvider != nil {
		err := client.tracerProvider.Shutdown(ctx)
		if err != nil {
			client.log.ErrorContext(ctx, "error shutting down tracer provider", "error", err.Error())
		}
	}
	if client.loggerProvider != nil {
		err := client.loggerProvider.Shutdown(ctx)
		if err != nil {
			client.log.ErrorContext(ctx, "error shutting down logger provider", "error", err.Error())
		}
	}
}

// ParseLevel reads a LOG_LEVEL value. Empty or unknown values mean info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func setEnvIfNotSet(key, value string) {
	if _, ok := os.LookupEnv(key); !ok {
		os.Setenv(key, value)
	}
}

// Setup installs the global meter, tracer and logger providers and replaces
// the default slog logger with a logrus + otel fanout. With an empty endpoint
// exporters come from the OTEL_*_EXPORTER environment, defaulting to none.
// The prometheus reader is always attached for /metrics.
func Setup(ctx context.Context, appName, endpoint string) (*Client, error) {
	level := ParseLevel(os.Getenv("LOG_LEVEL"))
	logrus.SetLevel(logrus.TraceLevel)

	client := &Client{
		log: slog.With("component", "telemetry"),
	}
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(cause error) {
		client.log.ErrorContext(ctx, "otel error", "error", cause.Error())
	}))

	hostName, _ := os.Hostname()

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(appName),
			semconv.HostName(hostName),
			semconv.ServiceInstanceID(uuid.NewString()),
		),
	)
	if err != nil {
		return nil, err
	}

	promExporter, err := prometheus.New(prometheus.WithNamespace(appName))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prometheus exporter: %w", err)
	}

	var (
		metricReader metric.Reader
		spanExporter trace.SpanExporter
		logExporter  log.Exporter
	)
	if endpoint != "" {
		metricExporter, err := otlpmetrichttp.New(ctx,
			otlpmetrichttp.WithEndpoint(endpoint),
			otlpmetrichttp.WithRetry(otlpmetrichttp.RetryConfig{
				Enabled: false,
			}),
		)
		if err != nil {
			return nil, err
		}
		metricReader = metric.NewPeriodicReader(metricExporter)

		spanExporter, err = otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithRetry(otlptracehttp.RetryConfig{
				Enabled: false,
			}),
		)
		if err != nil {
			return nil, err
		}

		logExporter, err = otlploghttp.New(ctx,
			otlploghttp.WithEndpoint(endpoint),
			otlploghttp.WithRetry(otlploghttp.RetryConfig{
				Enabled: false,
			}),
		)
		if err != nil {
			return nil, err
		}
	} else {
		// otlp to localhost is the autoexport default, none makes more sense here
		setEnvIfNotSet("OTEL_TRACES_EXPORTER", "none")
		setEnvIfNotSet("OTEL_LOGS_EXPORTER", "none")
		setEnvIfNotSet("OTEL_METRICS_EXPORTER", "none")

		metricReader, err = autoexport.NewMetricReader(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize metric exporter: %w", err)
		}
		spanExporter, err = autoexport.NewSpanExporter(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize trace exporter: %w", err)
		}
		logExporter, err = autoexport.NewLogExporter(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize log exporter: %w", err)
		}
	}

	client.metricProvider = metric.NewMeterProvider(
		metric.WithResource(r),
		metric.WithReader(metricReader),
		metric.WithReader(promExporter),
	)
	otel.SetMeterProvider(client.metricProvider)

	counter, err := otel.Meter(appName+"/telemetry").Int64Counter("up")
	if err != nil {
		return nil, err
	}
	counter.Add(ctx, 1)
	client.log.DebugContext(ctx, "metrics provider initialized")

	client.tracerProvider = trace.NewTracerProvider(
		trace.WithResource(r),
		trace.WithBatcher(spanExporter, trace.WithExportTimeout(time.Second)),
	)
	otel.SetTracerProvider(client.tracerProvider)
	client.log.DebugContext(ctx, "tracing provider initialized")

	client.loggerProvider = log.NewLoggerProvider(
		log.WithResource(r),
		log.WithProcessor(log.NewBatchProcessor(logExporter, log.WithExportInterval(time.Second))),
	)
	logglobal.SetLoggerProvider(client.loggerProvider)

	slog.SetDefault(slog.New(slogmulti.Fanout(
		sloglogrus.Option{Level: level, Logger: logrus.StandardLogger()}.NewLogrusHandler(),
		otelslog.NewHandler(appName, otelslog.WithLoggerProvider(client.loggerProvider)),
	)))

	// recreate telemetry logger
	client.log = slog.With("component", "telemetry")
	client.log.InfoContext(ctx, "telemetry initialized", "endpoint", endpoint, "log_level", level.String())

	return client, nil
}
