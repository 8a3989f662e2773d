package library

import "github.com/JaimeStill/prompt-mixer/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Create *openapi.Operation
	Find   *openapi.Operation
}

var auth = openapi.HeaderParam("Authorization", "Bearer session token", true)

// Spec contains OpenAPI operation definitions for the library endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:    "List saved prompts",
		Parameters: []*openapi.Parameter{auth},
		Responses: map[int]*openapi.Response{
			401: openapi.ResponseRef("Unauthorized"),
			501: openapi.ResponseRef("NotImplemented"),
		},
	},
	Create: &openapi.Operation{
		Summary:    "Save prompt",
		Parameters: []*openapi.Parameter{auth},
		Responses: map[int]*openapi.Response{
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			501: openapi.ResponseRef("NotImplemented"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Find saved prompt",
		Parameters: []*openapi.Parameter{
			auth,
			openapi.PathParam("id", "Saved prompt identifier"),
		},
		Responses: map[int]*openapi.Response{
			401: openapi.ResponseRef("Unauthorized"),
			404: openapi.ResponseRef("NotFound"),
			501: openapi.ResponseRef("NotImplemented"),
		},
	},
}
