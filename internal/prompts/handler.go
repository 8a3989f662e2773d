// Package prompts declares the prompt improvement routes called by the
// extension's content script. The improvement model is an external
// collaborator; until it is wired the route answers 501.
package prompts

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/prompt-mixer/pkg/handlers"
	"github.com/JaimeStill/prompt-mixer/pkg/openapi"
	"github.com/JaimeStill/prompt-mixer/pkg/routes"
)

const Tag = "prompts"

type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger.With("feature", Tag)}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/prompts",
		Tags:        []string{Tag},
		Description: "Prompt improvement",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/improve", Handler: h.Improve, OpenAPI: Spec.Improve},
		},
		Schemas: map[string]*openapi.Schema{
			"ImprovePromptRequest":  Spec.ImproveRequest,
			"ImprovePromptResponse": Spec.ImproveResponse,
		},
	}
}

// Improve rewrites the submitted prompt for the page it was typed on.
func (h *Handler) Improve(w http.ResponseWriter, r *http.Request) {
	handlers.NotImplemented(h.logger, Tag)(w, r)
}
