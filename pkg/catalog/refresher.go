package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/planz/planz/pkg/clock"
	"github.com/planz/planz/pkg/domain"
	"github.com/planz/planz/pkg/logger"
	"github.com/planz/planz/pkg/metrics"
)

// Refresher reloads the full catalog from its source on a cron schedule
// and publishes each load as a new snapshot.
type Refresher struct {
	source  domain.CatalogSource
	catalog *Catalog
	clock   clock.Clock
	log     logger.Logger
	timeout time.Duration
	cron    *cron.Cron
}

func NewRefresher(source domain.CatalogSource, catalog *Catalog, clk clock.Clock, log logger.Logger, timeout time.Duration) *Refresher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Refresher{
		source:  source,
		catalog: catalog,
		clock:   clk,
		log:     log.WithFields(map[string]interface{}{"component": "catalog-refresher"}),
		timeout: timeout,
		cron:    cron.New(),
	}
}

// Refresh loads one snapshot. On failure the previous snapshot stays live.
func (r *Refresher) Refresh(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	events, err := r.source.Query(ctx)
	if err != nil {
		metrics.CatalogRefreshes.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	snap := r.catalog.Publish(events, r.clock.Now())
	metrics.CatalogRefreshes.WithLabelValues("ok").Inc()
	metrics.CatalogEvents.Set(float64(len(snap.Events)))

	r.log.Debug("catalog snapshot published", map[string]interface{}{
		"version": snap.Version,
		"events":  len(snap.Events),
	})
	return snap, nil
}

// Start schedules Refresh with spec, a robfig/cron expression such as
// "@every 1m". It does not load immediately.
func (r *Refresher) Start(spec string) error {
	_, err := r.cron.AddFunc(spec, func() {
		if _, err := r.Refresh(context.Background()); err != nil {
			r.log.WithError(err).Error("scheduled catalog refresh failed", nil)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	r.cron.Start()
	return nil
}

// Shutdown stops scheduling and waits for a running refresh.
func (r *Refresher) Shutdown(ctx context.Context) error {
	done := r.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
