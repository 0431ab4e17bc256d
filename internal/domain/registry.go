package domain

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/party/internal/adapter"
	m "github.com/mouse-blink/party/internal/model"
)

// RegistryLoader acquires and merges the configured registry sources.
type RegistryLoader interface {
	// Acquire fetches every source in parallel and merges them in source
	// order. Any failing source fails the whole acquisition.
	Acquire(ctx context.Context, sources []string) (m.Registry, error)
}

type registryLoader struct {
	fetcher adapter.RegistryFetcher
	store   adapter.RegistryStore
	logger  *slog.Logger
	metrics *Metrics
}

// NewRegistryLoader constructs a RegistryLoader.
func NewRegistryLoader(fetcher adapter.RegistryFetcher, store adapter.RegistryStore, logger *slog.Logger, metrics *Metrics) RegistryLoader {
	if logger == nil {
		logger = slog.Default()
	}

	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &registryLoader{fetcher: fetcher, store: store, logger: logger, metrics: metrics}
}

func (l *registryLoader) Acquire(ctx context.Context, sources []string) (registry m.Registry, err error) {
	ctx, span := tracer().Start(ctx, "RegistryLoader.Acquire", trace.WithAttributes(attribute.Int("party.sources", len(sources))))
	defer func() { endSpan(span, err) }()

	if len(sources) == 0 {
		return m.Registry{}, configurationErrorf("at least one registry must be configured")
	}

	registries := make([]m.Registry, len(sources))

	g, gctx := errgroup.WithContext(ctx)

	for i, source := range sources {
		g.Go(func() error {
			reg, err := l.load(gctx, source)
			if err != nil {
				return err
			}

			registries[i] = reg

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return m.Registry{}, err
	}

	return MergeRegistries(registries...), nil
}

func (l *registryLoader) load(ctx context.Context, source string) (registry m.Registry, err error) {
	kind := string(adapter.ClassifySource(source))

	ctx, span := tracer().Start(ctx, "RegistryLoader.fetch", trace.WithAttributes(
		attribute.String("party.source", source),
		attribute.String("party.source_kind", kind),
	))
	defer func() { endSpan(span, err) }()

	start := time.Now()

	defer func() {
		l.metrics.RegistryFetches.WithLabelValues(kind, outcome(err)).Inc()
		l.metrics.RegistryFetchDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}()

	data, err := l.fetcher.Fetch(ctx, source)
	if err != nil {
		return m.Registry{}, registryErrorf(err, "could not fetch registry '%s'", source)
	}

	registry, err = l.store.Decode(data)
	if err != nil {
		return m.Registry{}, registryErrorf(err, "registry '%s' is not valid", source)
	}

	l.logger.Debug("registry fetched", "source", source, "kind", kind, "packages", len(registry.Packages), "elapsed", time.Since(start))

	return registry, nil
}

// MergeRegistries folds registries in order into a new registry. Packages
// are matched by case-insensitive name; for a package present in several
// registries only versions not already present are added, so the first
// source wins for a given version. Authors are merged by name the same way.
// The inputs are not modified.
func MergeRegistries(registries ...m.Registry) m.Registry {
	var merged m.Registry

	for _, reg := range registries {
		for _, pkg := range reg.Packages {
			i := merged.IndexOf(pkg.Name)
			if i < 0 {
				merged.Packages = append(merged.Packages, clonePackage(pkg))
				continue
			}

			target := &merged.Packages[i]
			for _, v := range pkg.Versions {
				if target.HasVersion(v.Version) {
					continue
				}

				target.Versions = append(target.Versions, v)
			}
		}

		for _, author := range reg.Authors {
			if _, ok := merged.GetAuthor(author.Name); ok {
				continue
			}

			merged.Authors = append(merged.Authors, author)
		}
	}

	return merged
}

func clonePackage(pkg m.RegistryPackage) m.RegistryPackage {
	pkg.Tags = slices.Clone(pkg.Tags)
	pkg.Versions = slices.Clone(pkg.Versions)

	return pkg
}
