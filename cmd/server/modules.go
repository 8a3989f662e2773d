package main

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/prompt-mixer/internal/api"
	"github.com/JaimeStill/prompt-mixer/internal/config"
	"github.com/JaimeStill/prompt-mixer/internal/infrastructure"
	"github.com/JaimeStill/prompt-mixer/pkg/module"
	"github.com/JaimeStill/prompt-mixer/web/docs"
)

type Modules struct {
	API  *module.Module
	Docs *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, fmt.Errorf("api module: %w", err)
	}

	docsModule, err := docs.NewModule(config.DocsPath, cfg.API.OpenAPI.Title, cfg.API.BasePath+"/openapi.json")
	if err != nil {
		return nil, fmt.Errorf("docs module: %w", err)
	}

	return &Modules{
		API:  apiModule,
		Docs: docsModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) error {
	for _, mod := range []*module.Module{m.API, m.Docs} {
		if err := router.Mount(mod); err != nil {
			return fmt.Errorf("mount %s: %w", mod.Tag(), err)
		}
	}
	return nil
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET "+config.HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET "+config.ReadyPath, func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	if infra.Metrics != nil {
		metricsHandler := infra.Metrics.Handler()
		router.HandleNative("GET "+cfg.Metrics.Path, metricsHandler.ServeHTTP)
	}

	return router
}
