// Package validator provides JSON Schema validation for configuration files.
package validator

// A JSONDocument is a parsed JSON document - i.e. the result of json.Unmarshal().
type JSONDocument interface{}

// Validator represents something which can be used to validate a JSON document.
type Validator interface {
	// Validate validates a JSON document.
	Validate(v JSONDocument) error
}

// Compiler compiles registered JSON Schemas into Validators.
type Compiler interface {
	// AddSchema registers a schema document with the compiler under id.
	AddSchema(id string, data JSONDocument) error

	// Compile creates a Validator from the schema previously added with the given id.
	Compile(id string) (Validator, error)
}
