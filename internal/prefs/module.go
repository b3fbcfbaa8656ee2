package prefs

import "go.uber.org/fx"

// Module provides the preference service.
var Module = fx.Provide(NewService)
