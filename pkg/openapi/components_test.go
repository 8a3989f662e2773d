package openapi_test

import (
	"os"
	"testing"

	"github.com/JaimeStill/prompt-mixer/pkg/openapi"
)

func TestNewComponents(t *testing.T) {
	components := openapi.NewComponents()

	if _, ok := components.Schemas["Error"]; !ok {
		t.Error("missing required schema: Error")
	}

	for _, name := range []string{"BadRequest", "Unauthorized", "NotFound", "NotImplemented"} {
		if _, ok := components.Responses[name]; !ok {
			t.Errorf("missing required response: %s", name)
		}
	}
}

func TestAddSchemas(t *testing.T) {
	components := openapi.NewComponents()

	components.AddSchemas(map[string]*openapi.Schema{
		"Prompt": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":    {Type: "string"},
				"title": {Type: "string"},
			},
		},
	})

	if _, ok := components.Schemas["Prompt"]; !ok {
		t.Error("schema Prompt not added")
	}

	if _, ok := components.Schemas["Error"]; !ok {
		t.Error("original Error schema was removed")
	}
}

func TestAddResponses(t *testing.T) {
	components := &openapi.Components{}

	components.AddResponses(map[string]*openapi.Response{
		"Forbidden": {Description: "Access denied"},
	})

	if _, ok := components.Responses["Forbidden"]; !ok {
		t.Error("response Forbidden not added")
	}
}

func TestConfig_Finalize(t *testing.T) {
	env := &openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE"}

	os.Setenv("TEST_OPENAPI_TITLE", "Overridden")
	defer os.Unsetenv("TEST_OPENAPI_TITLE")

	cfg := &openapi.Config{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Title != "Overridden" {
		t.Errorf("Title = %q, want %q", cfg.Title, "Overridden")
	}

	if cfg.Description == "" {
		t.Error("Description default not applied")
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &openapi.Config{Title: "Base", Description: "Base description"}

	cfg.Merge(&openapi.Config{Title: "Overlay"})

	if cfg.Title != "Overlay" {
		t.Errorf("Title = %q, want %q", cfg.Title, "Overlay")
	}

	if cfg.Description != "Base description" {
		t.Errorf("Description = %q, want preserved", cfg.Description)
	}
}
