// Package voicecms is the host plugin that loads CMS content during setup.
package voicecms

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"voicecms/internal/host"
	"voicecms/internal/ports/input"
)

var _ host.Plugin = (*VoiceCMS)(nil)

type VoiceCMS struct {
	setup  input.SetupUseCase
	logger *zap.SugaredLogger
}

func New(setup input.SetupUseCase, logger *zap.SugaredLogger) *VoiceCMS {
	return &VoiceCMS{
		setup:  setup,
		logger: logger,
	}
}

// Install registers the plugin on the host's setup phase.
func (v *VoiceCMS) Install(app *host.App) {
	app.Middleware(host.PhaseSetup).Use(v.setResources)
}

// setResources never fails the host: errors are logged and the namespace is
// left as the setup step left it.
func (v *VoiceCMS) setResources(ctx context.Context, hr *host.HandleRequest) error {
	result, err := v.setup.Setup(ctx, hr.App.CMS)
	if err != nil {
		v.logger.Errorf("cms: setup failed: %v", err)
		if result != nil && len(result.Collections) > 0 {
			v.logger.Warnf("cms: partially loaded collections: %s", strings.Join(result.Collections, ","))
		}
		return nil
	}
	v.logger.Infof(
		"cms: project %s loaded in %s (locales: %s, collections: %s)",
		result.ProjectID, result.Duration, strings.Join(result.Locales, ","), strings.Join(result.Collections, ","),
	)
	if len(result.Skipped) > 0 {
		v.logger.Warnf("cms: collections without 'key' property, not translated: %s", strings.Join(result.Skipped, ","))
	}
	return nil
}
