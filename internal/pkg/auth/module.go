package auth

import (
	"fmt"

	"go.uber.org/fx"

	"github.com/learnhub/learnhub/internal/config"
)

// Module provides the configured token strategy via fx.
var Module = fx.Provide(newTokenStrategy)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) (Strategy, error) {
	opts := Options{TTL: p.Config.TokenTTL}
	switch p.Config.TokenStrategy {
	case "", "hmac":
		return NewHMACStrategy(p.Config.AuthSecret, opts), nil
	case "jwt":
		return NewJWTStrategy(p.Config.AuthSecret, opts), nil
	default:
		return nil, fmt.Errorf("unknown token strategy %q", p.Config.TokenStrategy)
	}
}
