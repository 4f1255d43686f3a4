package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/nfrund/psyclinic/internal/backend"
	"github.com/nfrund/psyclinic/internal/config"
	"github.com/nfrund/psyclinic/internal/pubsub"
	"github.com/nfrund/psyclinic/internal/rendering"
	"github.com/nfrund/psyclinic/internal/storage"
	"github.com/nfrund/psyclinic/web"
)

// EmbeddedStaticDir selects the static assets compiled into the binary.
const EmbeddedStaticDir = "embed"

// Bus is the process-wide event bus. Shutting it down also flushes the tracer.
type Bus struct {
	*pubsub.WatermillBridge
	flushTracer func()
}

// Shutdown is called by the container.
func (b *Bus) Shutdown() error {
	defer b.flushTracer()
	return b.WatermillBridge.Close()
}

// NewContainer registers the services every module relies on. Modules add
// their own in Register.
func NewContainer(cfg *config.Config) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, provideBackend)
	do.Provide(i, provideBus)
	do.Provide(i, providePublisher)
	do.Provide(i, provideSubscriber)
	do.Provide(i, provideStaticStore)
	do.ProvideValue(i, rendering.NewUniversalRenderer())

	return i
}

func provideBackend(i do.Injector) (*backend.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return backend.New(cfg.Backend.URL,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithToken(cfg.Backend.Token),
		backend.WithLogger(slog.Default().With("component", "backend")),
	)
}

func provideBus(i do.Injector) (*Bus, error) {
	cfg := do.MustInvoke[*config.Config](i)

	tracer, cleanup, err := pubsub.SetupOTel(context.Background(), pubsub.TracingConfigFrom(cfg.Tracing))
	if err != nil {
		return nil, fmt.Errorf("set up tracing: %w", err)
	}
	if cfg.Tracing.Enabled {
		slog.Info("Tracing diagnostics bus", "zipkin", cfg.Tracing.ZipkinURL)
		return &Bus{WatermillBridge: pubsub.NewWatermillBridgeWithTracer(tracer), flushTracer: cleanup}, nil
	}
	return &Bus{WatermillBridge: pubsub.NewWatermillBridge(), flushTracer: cleanup}, nil
}

// The interface views hand out the bridge itself so the container shuts the
// bus down once, through *Bus.
func providePublisher(i do.Injector) (pubsub.Publisher, error) {
	return do.MustInvoke[*Bus](i).WatermillBridge, nil
}

func provideSubscriber(i do.Injector) (pubsub.Subscriber, error) {
	return do.MustInvoke[*Bus](i).WatermillBridge, nil
}

func provideStaticStore(i do.Injector) (*storage.AferoStore, error) {
	cfg := do.MustInvoke[*config.Config](i)
	if cfg.StaticDir == EmbeddedStaticDir {
		return storage.NewEmbeddedStore(web.FS, "static")
	}
	return storage.NewDirStore(cfg.StaticDir), nil
}

// Shutdown stops every service the container built, in reverse order.
func Shutdown(ctx context.Context, i *do.RootScope) error {
	report := i.ShutdownWithContext(ctx)
	if report != nil && !report.Succeed {
		return errors.New(report.Error())
	}
	return nil
}
