package api

import (
	"log/slog"

	"github.com/JaimeStill/prompt-mixer/internal/auth"
	"github.com/JaimeStill/prompt-mixer/internal/library"
	"github.com/JaimeStill/prompt-mixer/internal/prompts"
	"github.com/JaimeStill/prompt-mixer/internal/stripe"
	"github.com/JaimeStill/prompt-mixer/internal/users"
	"github.com/JaimeStill/prompt-mixer/pkg/routes"
)

// entry pairs a feature group with the prefix and tag it is mounted under.
type entry struct {
	prefix string
	tag    string
	group  routes.Group
}

// entries returns the feature mounts in registration order. The order
// determines documentation tag order and the mount listing.
func entries(logger *slog.Logger) []entry {
	return []entry{
		{prefix: "/auth", tag: auth.Tag, group: auth.NewHandler(logger).Routes()},
		{prefix: "/users", tag: users.Tag, group: users.NewHandler(logger).Routes()},
		{prefix: "/prompts", tag: prompts.Tag, group: prompts.NewHandler(logger).Routes()},
		{prefix: "/library", tag: library.Tag, group: library.NewHandler(logger).Routes()},
		{prefix: "/stripe", tag: stripe.Tag, group: stripe.NewHandler(logger).Routes()},
	}
}
