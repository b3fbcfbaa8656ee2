package test

import "context"

// SessionStoreStub keeps the persisted session payload in memory and
// records the operations applied to it.
type SessionStoreStub struct {
	Payload []byte

	LoadErr  error
	SaveErr  error
	ClearErr error

	Saves  int
	Clears int
}

// Load returns the stored payload or the configured error.
func (s *SessionStoreStub) Load(ctx context.Context) ([]byte, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Payload, nil
}

// Save stores the payload or returns the configured error.
func (s *SessionStoreStub) Save(ctx context.Context, payload []byte) error {
	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Payload = append([]byte(nil), payload...)
	return nil
}

// Clear drops the payload or returns the configured error.
func (s *SessionStoreStub) Clear(ctx context.Context) error {
	s.Clears++
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.Payload = nil
	return nil
}
