package openapi

// Components holds reusable schema and response definitions.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// NewComponents creates components pre-populated with the shared error
// schema and the standard error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type: "object",
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Error message"},
				},
				Required: []string{"error"},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":     ResponseJSON("Invalid request", "Error"),
			"Unauthorized":   ResponseJSON("Authentication required", "Error"),
			"NotFound":       ResponseJSON("Resource not found", "Error"),
			"NotImplemented": ResponseJSON("Endpoint not implemented", "Error"),
		},
	}
}

// AddSchemas merges schemas into the components, replacing entries with the same name.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	if c.Schemas == nil {
		c.Schemas = make(map[string]*Schema)
	}
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// AddResponses merges responses into the components, replacing entries with the same name.
func (c *Components) AddResponses(responses map[string]*Response) {
	if c.Responses == nil {
		c.Responses = make(map[string]*Response)
	}
	for name, resp := range responses {
		c.Responses[name] = resp
	}
}
