package users

import "github.com/JaimeStill/prompt-mixer/pkg/openapi"

type spec struct {
	Me *openapi.Operation
}

var Spec = spec{
	Me: &openapi.Operation{
		Summary:     "Current user",
		Description: "Returns the profile of the authenticated user",
		Parameters: []*openapi.Parameter{
			openapi.HeaderParam("Authorization", "Bearer session token", true),
		},
		Responses: map[int]*openapi.Response{
			401: openapi.ResponseRef("Unauthorized"),
			501: openapi.ResponseRef("NotImplemented"),
		},
	},
}
