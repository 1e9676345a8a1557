// Package host is a minimal voice-application host: plugins hook into named
// lifecycle phases and share one content namespace.
package host

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"voicecms/internal/infrastructure/content"
)

// PhaseSetup runs once before any request is handled.
const PhaseSetup = "setup"

// HandleRequest is what a middleware handler receives.
type HandleRequest struct {
	App *App
}

type Handler func(ctx context.Context, hr *HandleRequest) error

// Middleware is an ordered list of handlers for one phase.
type Middleware struct {
	name     string
	handlers []Handler
}

func (m *Middleware) Use(handlers ...Handler) *Middleware {
	m.handlers = append(m.handlers, handlers...)
	return m
}

// Plugin installs itself into an App.
type Plugin interface {
	Install(app *App)
}

type App struct {
	// CMS is the shared content namespace ($cms).
	CMS        *content.Namespace
	middleware map[string]*Middleware
	logger     *zap.SugaredLogger
}

func New(logger *zap.SugaredLogger) *App {
	return &App{
		CMS:        content.NewNamespace(),
		middleware: map[string]*Middleware{},
		logger:     logger,
	}
}

// Middleware returns the middleware of phase, creating it on first use.
func (a *App) Middleware(phase string) *Middleware {
	m, ok := a.middleware[phase]
	if !ok {
		m = &Middleware{name: phase}
		a.middleware[phase] = m
	}
	return m
}

func (a *App) Use(plugins ...Plugin) {
	for _, p := range plugins {
		p.Install(a)
	}
}

// Setup runs the setup phase once. Every handler runs even if an earlier
// one failed.
func (a *App) Setup(ctx context.Context) error {
	return a.run(ctx, PhaseSetup)
}

func (a *App) run(ctx context.Context, phase string) error {
	m, ok := a.middleware[phase]
	if !ok {
		return nil
	}
	hr := &HandleRequest{App: a}
	var errs []error
	for i, h := range m.handlers {
		if err := h(ctx, hr); err != nil {
			a.logger.Errorf("host: %s handler #%d failed: %v", m.name, i, err)
			errs = append(errs, fmt.Errorf("%s handler #%d: %w", m.name, i, err))
		}
	}
	return errors.Join(errs...)
}
