package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/learnhub/learnhub/internal/config"
	"github.com/learnhub/learnhub/internal/domain/repository"
	"github.com/learnhub/learnhub/internal/storage/memory"
	"github.com/learnhub/learnhub/internal/storage/postgres"
)

// Module wires the repository factory. Postgres backs the repositories
// when a database URI is configured; otherwise the seeded in-memory store
// is used.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.UserRepository { return f.Users() },
		func(f repository.Factory) repository.ProgramRepository { return f.Programs() },
	),
)

type factoryParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

func newFactory(p factoryParams) (repository.Factory, error) {
	if p.Config.DatabaseURI == "" {
		store := memory.New(p.Config.StoreLatency, p.Logger)
		store.Seed(memory.DefaultUsers(), memory.DefaultPrograms())
		p.Logger.Info("storage backend selected", slog.String("backend", "memory"))
		return store, nil
	}

	store, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			store.Close()
			return nil
		},
	})
	p.Logger.Info("storage backend selected", slog.String("backend", "postgres"))
	return store, nil
}
