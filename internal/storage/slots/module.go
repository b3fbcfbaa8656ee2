package slots

import (
	"context"

	"go.uber.org/fx"

	"github.com/learnhub/learnhub/internal/config"
)

// Module wires the slot store and closes it on shutdown.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Invoke(registerLifecycle),
)

func newStore(cfg *config.Config) (*Store, error) {
	return Open(cfg.SessionDBPath)
}

func registerLifecycle(lc fx.Lifecycle, store *Store) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
}
