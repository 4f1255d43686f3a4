package pubsub

import "github.com/nfrund/psyclinic/internal/config"

// TracingConfigFrom maps the application's tracing settings onto TracingConfig.
func TracingConfigFrom(c config.TracingConfig) TracingConfig {
	cfg := DefaultTracingConfig()
	cfg.Enabled = c.Enabled
	if c.ServiceName != "" {
		cfg.ServiceName = c.ServiceName
	}
	if c.ZipkinURL != "" {
		cfg.ZipkinURL = c.ZipkinURL
	}
	return cfg
}
