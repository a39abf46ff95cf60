// Package deck imports vocabulary decks exported from external
// flashcard apps. Imported items are scheduled with the step algorithm,
// matching the scheduling the learner's previous app used; natively
// added items stay on the adaptive scheduler.
package deck

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Deck is a parsed import payload.
type Deck struct {
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// Card is one vocabulary entry of a deck.
type Card struct {
	Term        string `json:"term"`
	Translation string `json:"translation"`
	Notes       string `json:"notes,omitempty"`
}

// deckSchema is the JSON schema an import payload must satisfy.
var deckSchema = map[string]any{
	"type":                 "object",
	"required":             []any{"name", "cards"},
	"additionalProperties": false,
	"properties": map[string]any{
		"name": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"cards": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":                 "object",
				"required":             []any{"term"},
				"additionalProperties": false,
				"properties": map[string]any{
					"term":        map[string]any{"type": "string", "minLength": 1},
					"translation": map[string]any{"type": "string"},
					"notes":       map[string]any{"type": "string"},
				},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// getCompiledSchema compiles the deck schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://deck.json", deckSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://deck.json")
	})
	return compiledSchema, compileErr
}

// Parse validates raw bytes against the deck schema and unmarshals them.
func Parse(raw []byte) (*Deck, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile deck schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("deck validation failed: %w", err)
	}

	var d Deck
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("unmarshal deck: %w", err)
	}
	return &d, nil
}
