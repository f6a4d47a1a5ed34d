package questions

import (
	"errors"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Question files are only checked for being arrays; items stay opaque.
const questionListSchema = `{"type": "array"}`

func compileListSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("questions.json", strings.NewReader(questionListSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile("questions.json")
}

// schemaReason flattens a validation failure into one line.
func schemaReason(err error) string {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return err.Error()
	}
	var messages []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			messages = append(messages, strings.TrimSpace(node.Message))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)
	return strings.Join(messages, "; ")
}
