package openapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/prompt-mixer/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Prompt Mixer API", "0.1.0")

	if spec.OpenAPI != openapi.Version {
		t.Errorf("OpenAPI = %q, want %q", spec.OpenAPI, openapi.Version)
	}

	if spec.Info.Title != "Prompt Mixer API" || spec.Info.Version != "0.1.0" {
		t.Errorf("Info = %+v", spec.Info)
	}

	if spec.Paths == nil {
		t.Error("Paths map is nil")
	}

	if spec.Components == nil {
		t.Error("Components is nil")
	}
}

func TestSpec_AddServer(t *testing.T) {
	spec := openapi.NewSpec("API", "1.0.0")

	spec.AddServer("")
	spec.AddServer("http://localhost:8000")

	if len(spec.Servers) != 1 || spec.Servers[0].URL != "http://localhost:8000" {
		t.Errorf("Servers = %v, want one localhost server", spec.Servers)
	}
}

func TestSpec_AddTag_Order(t *testing.T) {
	spec := openapi.NewSpec("API", "1.0.0")

	names := []string{"auth", "users", "prompts", "library", "stripe"}
	for _, name := range names {
		spec.AddTag(name, "")
	}
	spec.AddTag("users", "User management")

	if len(spec.Tags) != len(names) {
		t.Fatalf("len(Tags) = %d, want %d", len(spec.Tags), len(names))
	}

	for i, name := range names {
		if spec.Tags[i].Name != name {
			t.Errorf("Tags[%d] = %q, want %q", i, spec.Tags[i].Name, name)
		}
	}

	if spec.Tags[1].Description != "User management" {
		t.Errorf("users description = %q, want %q", spec.Tags[1].Description, "User management")
	}
}

func TestSpec_AddOperation(t *testing.T) {
	spec := openapi.NewSpec("API", "1.0.0")

	methods := []string{"GET", "POST", "PUT", "PATCH", "DELETE"}
	for _, m := range methods {
		spec.AddOperation("/library", m, &openapi.Operation{Summary: m})
	}

	item := spec.Paths["/library"]
	if item == nil {
		t.Fatal("path not added")
	}

	got := map[string]*openapi.Operation{
		"GET":    item.Get,
		"POST":   item.Post,
		"PUT":    item.Put,
		"PATCH":  item.Patch,
		"DELETE": item.Delete,
	}

	for _, m := range methods {
		if got[m] == nil || got[m].Summary != m {
			t.Errorf("%s operation incorrect", m)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")
	spec.AddTag("stripe", "Billing")
	spec.AddOperation("/stripe/webhook", "POST", &openapi.Operation{
		Summary: "Stripe webhook",
		Responses: map[int]*openapi.Response{
			501: openapi.ResponseRef("NotImplemented"),
		},
	})

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if result["openapi"] != "3.1.0" {
		t.Errorf("openapi = %v, want 3.1.0", result["openapi"])
	}

	tags, ok := result["tags"].([]any)
	if !ok || len(tags) != 1 {
		t.Fatalf("tags = %v, want one tag", result["tags"])
	}

	paths, ok := result["paths"].(map[string]any)
	if !ok {
		t.Fatal("paths is not an object")
	}

	if _, ok := paths["/stripe/webhook"]; !ok {
		t.Error("webhook path missing from output")
	}
}

func TestWriteJSON(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	path := filepath.Join(t.TempDir(), "openapi.json")

	if err := openapi.WriteJSON(spec, path); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("written file is not valid JSON: %v", err)
	}
}

func TestWriteJSON_InvalidPath(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	err := openapi.WriteJSON(spec, "/nonexistent/directory/openapi.json")
	if err == nil {
		t.Error("WriteJSON() expected error for invalid path, got nil")
	}
}

func TestServeSpec(t *testing.T) {
	payload := []byte(`{"openapi":"3.1.0"}`)

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	w := httptest.NewRecorder()

	openapi.ServeSpec(payload)(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != string(payload) {
		t.Errorf("body = %q, want %q", string(body), string(payload))
	}
}
