/*
Package observability turns session lifecycle events into logs and metrics.

Both helpers return domain.LifecycleHooks, so they can be merged and passed to
game.WithLifecycleHooks:

	metrics, _ := observability.NewMetrics(prometheus.NewRegistry())
	hooks := metrics.Hooks().Merge(observability.LoggingHooks(logger))
*/
package observability
