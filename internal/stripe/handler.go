// Package stripe declares the payment provider webhook route.
package stripe

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/prompt-mixer/pkg/handlers"
	"github.com/JaimeStill/prompt-mixer/pkg/routes"
)

const Tag = "stripe"

type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger.With("feature", Tag)}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/stripe",
		Tags:        []string{Tag},
		Description: "Payment provider callbacks",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/webhook", Handler: h.Webhook, OpenAPI: Spec.Webhook},
		},
	}
}

// Webhook receives signed payment events.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	handlers.NotImplemented(h.logger, Tag)(w, r)
}
