// Package infrastructure provides core service initialization for application startup.
// It assembles the shared dependencies (lifecycle, logging, metrics) that
// modules require.
package infrastructure

import (
	"log/slog"

	"github.com/JaimeStill/prompt-mixer/internal/config"
	"github.com/JaimeStill/prompt-mixer/pkg/lifecycle"
	"github.com/JaimeStill/prompt-mixer/pkg/logging"
	"github.com/JaimeStill/prompt-mixer/pkg/metrics"
)

// ServiceName is attached to every log record.
const ServiceName = "prompt-mixer"

// Infrastructure holds the core systems required by all modules.
// Metrics is nil when metrics are disabled.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
}

// New creates an Infrastructure from a finalized configuration.
func New(cfg *config.Config) *Infrastructure {
	logCfg := cfg.Logging
	logCfg.Service = ServiceName

	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&logCfg),
	}

	if cfg.Metrics.Enabled {
		infra.Metrics = metrics.New(cfg.Metrics.Namespace)
	}

	return infra
}

// Scoped returns a copy whose logger carries the module attribute.
func (i *Infrastructure) Scoped(module string) *Infrastructure {
	return &Infrastructure{
		Lifecycle: i.Lifecycle,
		Logger:    i.Logger.With("module", module),
		Metrics:   i.Metrics,
	}
}
