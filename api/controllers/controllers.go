// Package controllers holds the page loaders and JSON endpoints of
// the web app. Loaders render templates; mutation endpoints speak the
// same envelope the backend does.
package controllers

import (
	"errors"

	"github.com/HasanBocek/KTUTennisCRM/api/views"
	"github.com/HasanBocek/KTUTennisCRM/internal/layout"
	"github.com/HasanBocek/KTUTennisCRM/internal/menu"
	"github.com/HasanBocek/KTUTennisCRM/internal/notify"
	"github.com/HasanBocek/KTUTennisCRM/internal/services"
	"github.com/HasanBocek/KTUTennisCRM/internal/state"
	"github.com/HasanBocek/KTUTennisCRM/pkg/logger"
)

// Params collects the controller dependencies.
type Params struct {
	Services *services.Services
	State    *state.State
	Center   *notify.Center
	Renderer *views.Renderer
	Layouts  *layout.Manager
	Filter   menu.Filter
	Logger   *logger.Logger
}

// Controllers bundles every handler group over one dependency set.
type Controllers struct {
	svcs     *services.Services
	state    *state.State
	center   *notify.Center
	renderer *views.Renderer
	layouts  *layout.Manager
	filter   menu.Filter
	logg     *logger.Logger
}

func New(params Params) (*Controllers, error) {
	if params.Services == nil {
		return nil, errors.New("services are required")
	}
	if params.State == nil {
		return nil, errors.New("state is required")
	}
	if params.Center == nil {
		return nil, errors.New("notify center is required")
	}
	if params.Renderer == nil {
		return nil, errors.New("renderer is required")
	}
	if params.Layouts == nil {
		return nil, errors.New("layout manager is required")
	}
	if params.Logger == nil {
		return nil, errors.New("logger is required")
	}
	return &Controllers{
		svcs:     params.Services,
		state:    params.State,
		center:   params.Center,
		renderer: params.Renderer,
		layouts:  params.Layouts,
		filter:   params.Filter,
		logg:     params.Logger,
	}, nil
}
