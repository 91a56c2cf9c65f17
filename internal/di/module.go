package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/buyout/internal/app"
	"github.com/polkiloo/buyout/internal/config"
	"github.com/polkiloo/buyout/internal/logger"
	"github.com/polkiloo/buyout/internal/metrics"
	"github.com/polkiloo/buyout/internal/server/http/router"
	"github.com/polkiloo/buyout/internal/storage/postgres"
	"github.com/polkiloo/buyout/internal/usecase"
)

// Module assembles the application graph. Extra options are applied last so
// tests can replace components.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(m *metrics.Metrics) usecase.StatusObserver { return m }),
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
