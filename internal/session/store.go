package session

import (
	"context"

	"github.com/learnhub/learnhub/internal/storage/slots"
)

// Store persists the session payload between process runs.
type Store interface {
	// Load returns the persisted payload, or nil when no session is stored.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
	Clear(ctx context.Context) error
}

// userSlot is the slot name the session payload lives under.
const userSlot = "user"

type slotStore struct {
	slots *slots.Store
}

// NewSlotStore adapts the named-slot store to the session Store contract.
func NewSlotStore(store *slots.Store) Store {
	return &slotStore{slots: store}
}

func (s *slotStore) Load(ctx context.Context) ([]byte, error) {
	return s.slots.Get(ctx, userSlot)
}

func (s *slotStore) Save(ctx context.Context, payload []byte) error {
	return s.slots.Set(ctx, userSlot, payload)
}

func (s *slotStore) Clear(ctx context.Context) error {
	return s.slots.Delete(ctx, userSlot)
}
