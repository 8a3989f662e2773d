// Package auth declares the authentication routes. Session verification is
// provided by an external identity collaborator; until it is wired every
// route answers 501.
package auth

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/prompt-mixer/pkg/handlers"
	"github.com/JaimeStill/prompt-mixer/pkg/routes"
)

// Tag is the documentation tag and metrics label for this group.
const Tag = "auth"

type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger.With("feature", Tag)}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/auth",
		Tags:        []string{Tag},
		Description: "Session verification for the browser extension",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/me", Handler: h.Me, OpenAPI: Spec.Me},
		},
	}
}

// Me reports the authenticated session for the bearer token on the request.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	handlers.NotImplemented(h.logger, Tag)(w, r)
}
