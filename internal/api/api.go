// Package api assembles the feature route groups into a single module
// mounted under the API base path.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/prompt-mixer/internal/config"
	"github.com/JaimeStill/prompt-mixer/internal/infrastructure"
	"github.com/JaimeStill/prompt-mixer/pkg/handlers"
	"github.com/JaimeStill/prompt-mixer/pkg/middleware"
	"github.com/JaimeStill/prompt-mixer/pkg/module"
	"github.com/JaimeStill/prompt-mixer/pkg/openapi"
)

// Tag labels the API module itself.
const Tag = "api"

// NewModule builds the aggregate router for the feature groups, documents
// them in an OpenAPI spec and returns the result as a module mounted at
// cfg.API.BasePath. Any registration error is returned and should abort
// startup.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := infra.Scoped(Tag)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	router, err := buildRouter(runtime, cfg.API.BasePath, spec)
	if err != nil {
		return nil, err
	}

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}

	mounts := router.Mounts()
	router.HandleNative("GET /openapi.json", openapi.ServeSpec(specBytes))
	router.HandleNative("GET /mounts", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, mounts)
	})

	m, err := module.New(cfg.API.BasePath, Tag, router)
	if err != nil {
		return nil, err
	}
	m.Use(buildMiddleware(runtime, cfg).Apply)

	for _, mount := range mounts {
		runtime.Logger.Debug("mounted", "prefix", cfg.API.BasePath+mount.Prefix, "tag", mount.Tag)
	}

	return m, nil
}

func buildRouter(runtime *infrastructure.Infrastructure, basePath string, spec *openapi.Spec) (*module.Router, error) {
	router := module.NewRouter()

	for _, e := range entries(runtime.Logger) {
		m, err := module.New(e.prefix, e.tag, e.group.Handler())
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", e.tag, err)
		}
		m.Use(runtime.Metrics.Middleware(e.tag))

		if err := router.Mount(m); err != nil {
			return nil, fmt.Errorf("register %s: %w", e.tag, err)
		}

		spec.AddTag(e.tag, e.group.Description)
		e.group.AddToSpec(basePath, spec)
	}

	return router, nil
}

// buildMiddleware returns the API request pipeline, outermost first.
// RequestID must precede Logger.
func buildMiddleware(runtime *infrastructure.Infrastructure, cfg *config.Config) middleware.System {
	stack := middleware.New()
	stack.Use(middleware.RequestID())
	stack.Use(middleware.Logger(runtime.Logger))
	stack.Use(middleware.CORS(&cfg.API.CORS))
	stack.Use(middleware.MaxBytes(cfg.API.MaxBodySizeBytes()))
	return stack
}
