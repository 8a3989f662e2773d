// Package users declares the user account routes.
package users

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/prompt-mixer/pkg/handlers"
	"github.com/JaimeStill/prompt-mixer/pkg/routes"
)

const Tag = "users"

type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger.With("feature", Tag)}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/users",
		Tags:        []string{Tag},
		Description: "User account profile",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/me", Handler: h.Me, OpenAPI: Spec.Me},
		},
	}
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	handlers.NotImplemented(h.logger, Tag)(w, r)
}
