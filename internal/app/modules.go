package app

import (
	"github.com/nfrund/psyclinic/internal/module"
	"github.com/nfrund/psyclinic/internal/modules/dashboard"
	"github.com/nfrund/psyclinic/internal/modules/team"
)

// NewModules returns the features the site runs with, in boot order.
func NewModules() []module.Module {
	return []module.Module{
		dashboard.New(),
		team.New(),
	}
}
