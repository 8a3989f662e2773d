// Package library declares the routes for a user's saved prompts.
package library

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/prompt-mixer/pkg/handlers"
	"github.com/JaimeStill/prompt-mixer/pkg/routes"
)

const Tag = "library"

type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger.With("feature", Tag)}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/library",
		Tags:        []string{Tag},
		Description: "Saved prompts of the authenticated user",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.NotImplemented(h.logger, Tag)(w, r)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	handlers.NotImplemented(h.logger, Tag)(w, r)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	handlers.NotImplemented(h.logger, Tag)(w, r)
}
