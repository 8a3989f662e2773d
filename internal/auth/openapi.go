package auth

import "github.com/JaimeStill/prompt-mixer/pkg/openapi"

type spec struct {
	Me *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the auth endpoints.
var Spec = spec{
	Me: &openapi.Operation{
		Summary:     "Check session",
		Description: "Reports whether the bearer token identifies an active session",
		Parameters: []*openapi.Parameter{
			openapi.HeaderParam("Authorization", "Bearer session token", true),
		},
		Responses: map[int]*openapi.Response{
			401: openapi.ResponseRef("Unauthorized"),
			501: openapi.ResponseRef("NotImplemented"),
		},
	},
}
