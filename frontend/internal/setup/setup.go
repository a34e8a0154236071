package setup

import (
	"github.com/kebab-dev/kebab/frontend/internal/apiclient"
	"github.com/kebab-dev/kebab/frontend/internal/handler"
	"github.com/kebab-dev/kebab/frontend/templates"
	"github.com/kebab-dev/kebab/shared/config"
)

type Dependencies struct {
	Handler *handler.Handler
	Public  config.Public
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	tmpls, err := templates.Load()
	if err != nil {
		return nil, err
	}
	apiClient := apiclient.New(cfg.Public.Frontend.ApiBaseURL, cfg.Public.Frontend.ApiTimeout)

	return &Dependencies{
		Handler: handler.New(tmpls, apiClient),
		Public:  cfg.Public,
	}, nil
}
