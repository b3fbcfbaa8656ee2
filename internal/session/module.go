package session

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/learnhub/learnhub/internal/storage/slots"
	"github.com/learnhub/learnhub/internal/usecase"
)

// Module wires the session manager over the slot store.
var Module = fx.Provide(newManager)

type managerParams struct {
	fx.In

	Auth   *usecase.AuthUseCase
	Slots  *slots.Store
	Logger *slog.Logger
}

func newManager(p managerParams) *Manager {
	return NewManager(p.Auth, NewSlotStore(p.Slots), p.Logger)
}
