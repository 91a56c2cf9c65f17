package metrics

import "go.uber.org/fx"

// Module provides application metrics.
var Module = fx.Provide(New)
