package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

const (
	InstrumentationName = "github.com/rocketscienceinc/tictactoe-engine"
	serviceName         = "tictactoe"
	shutdownTimeout     = 5 * time.Second
)

var ErrEndpointNotSet = errors.New("metrics endpoint is empty")

// Init - installs a global meter provider exporting over OTLP gRPC.
// With metrics disabled the global noop provider stays in place.
func Init(ctx context.Context, conf config.Metrics) (func(context.Context) error, error) {
	if !conf.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	if conf.Endpoint == "" {
		return nil, ErrEndpointNotSet
	}

	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(conf.Endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(attribute.String("service.name", serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(conf.Interval))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := mp.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown MeterProvider: %w", err)
		}

		return nil
	}

	return shutdown, nil
}
