package stripe

import "github.com/JaimeStill/prompt-mixer/pkg/openapi"

type spec struct {
	Webhook *openapi.Operation
}

var Spec = spec{
	Webhook: &openapi.Operation{
		Summary:     "Payment webhook",
		Description: "Receives payment events signed by the provider",
		Parameters: []*openapi.Parameter{
			openapi.HeaderParam("Stripe-Signature", "Event signature", true),
		},
		Responses: map[int]*openapi.Response{
			400: openapi.ResponseRef("BadRequest"),
			501: openapi.ResponseRef("NotImplemented"),
		},
	},
}
