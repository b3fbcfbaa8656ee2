package di

import (
	"go.uber.org/fx"

	"github.com/learnhub/learnhub/internal/app"
	"github.com/learnhub/learnhub/internal/config"
	"github.com/learnhub/learnhub/internal/logger"
	"github.com/learnhub/learnhub/internal/pkg/auth"
	"github.com/learnhub/learnhub/internal/prefs"
	"github.com/learnhub/learnhub/internal/server/http/router"
	"github.com/learnhub/learnhub/internal/session"
	"github.com/learnhub/learnhub/internal/storage"
	"github.com/learnhub/learnhub/internal/storage/slots"
	"github.com/learnhub/learnhub/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		slots.Module,
		usecase.Module,
		session.Module,
		prefs.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
