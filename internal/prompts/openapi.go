package prompts

import "github.com/JaimeStill/prompt-mixer/pkg/openapi"

type spec struct {
	Improve         *openapi.Operation
	ImproveRequest  *openapi.Schema
	ImproveResponse *openapi.Schema
}

// Spec contains OpenAPI definitions for the prompt improvement endpoint.
// The payload shapes are the ones the extension sends and reads.
var Spec = spec{
	Improve: &openapi.Operation{
		Summary:     "Improve prompt",
		Description: "Rewrites a prompt captured from a chat page into a clearer version",
		Parameters: []*openapi.Parameter{
			openapi.HeaderParam("Authorization", "Bearer session token", false),
		},
		RequestBody: openapi.RequestBodyJSON("ImprovePromptRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Improved prompt", "ImprovePromptResponse"),
			400: openapi.ResponseRef("BadRequest"),
			501: openapi.ResponseRef("NotImplemented"),
		},
	},
	ImproveRequest: &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"prompt": {Type: "string", Description: "Prompt text as typed by the user"},
			"url":    {Type: "string", Description: "URL of the page the prompt was captured on"},
		},
		Required: []string{"prompt"},
	},
	ImproveResponse: &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"improved_prompt": {Type: "string"},
		},
		Required: []string{"improved_prompt"},
	},
}
