package config

import "go.uber.org/fx"

// Module provides the loaded service configuration to the fx graph.
var Module = fx.Provide(Load)
