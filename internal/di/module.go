package di

import (
	"github.com/polkiloo/fintrack/internal/app"
	"github.com/polkiloo/fintrack/internal/config"
	"github.com/polkiloo/fintrack/internal/logger"
	"github.com/polkiloo/fintrack/internal/pkg/auth"
	"github.com/polkiloo/fintrack/internal/server/http/handlers"
	"github.com/polkiloo/fintrack/internal/server/http/router"
	"github.com/polkiloo/fintrack/internal/storage/postgres"
	"github.com/polkiloo/fintrack/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.StorageHealth { return s }),
		fx.Provide(func(f *app.FinanceFacade) handlers.FinanceFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
