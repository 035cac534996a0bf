package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Environment data
	EnvironmentProvider EnvironmentProvider
	DengueSource        DengueSource

	// Observability
	Metrics         MetricsRecorder
	MetricsReporter MetricsReporter

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Clock          Clock
}
