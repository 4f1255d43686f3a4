package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
)

// Module is a self-contained feature of the site.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register adds the module's services to the container.
	Register(i do.Injector) error

	// Boot runs after every module has registered. Routes and background
	// work are set up here.
	Boot(ctx context.Context, router *echo.Echo, i do.Injector) error

	// Shutdown releases whatever Boot started.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op implementations modules can embed.
type BaseModule struct{}

func (m *BaseModule) Register(i do.Injector) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Echo, i do.Injector) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}
