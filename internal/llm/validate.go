package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled schemas keyed by Schema.Name; the app only ever registers the
// recommendation schema, but the cache keeps repeated quiz cycles cheap.
var compiledSchemas sync.Map

// structuredContent normalizes and checks a provider's raw output for a
// structured request. Fenced output is unwrapped, truncated output is
// rejected, and the result is validated against the schema when one was
// requested. The returned content is what callers should decode.
func structuredContent(schema *Schema, raw json.RawMessage, truncated bool) (json.RawMessage, error) {
	content := stripFences(raw)

	if truncated {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}

	if schema == nil {
		return content, nil
	}
	if err := validateResponse(schema, content); err != nil {
		return nil, err
	}
	return content, nil
}

// stripFences removes a markdown code fence wrapping the payload. Gemini in
// particular likes to answer ```json ... ``` even when asked for bare JSON.
func stripFences(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(trimmed, []byte("```")) {
		return raw
	}

	trimmed = bytes.TrimPrefix(trimmed, []byte("```"))
	if i := bytes.IndexByte(trimmed, '\n'); i >= 0 {
		// Drop the info string ("json") on the opening fence line.
		trimmed = trimmed[i+1:]
	}
	trimmed = bytes.TrimSuffix(bytes.TrimSpace(trimmed), []byte("```"))
	return bytes.TrimSpace(trimmed)
}

// validateResponse checks raw JSON against a Schema. A nil schema always
// passes. Failures come back as *ErrInvalidResponse carrying the payload
// so the event log can record what the model actually said.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("not valid JSON: %w", err),
		}
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", schema.Name, err),
		}
	}

	if err := compiled.Validate(doc); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema violation: %w", err),
		}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if hit, ok := compiledSchemas.Load(schema.Name); ok {
		return hit.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON document, not a Go map with typed
	// values, so round-trip the definition through encoding/json first.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var doc any
	if err := json.Unmarshal(defBytes, &doc); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	id := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(id, doc); err != nil {
		return nil, err
	}
	compiled, err := c.Compile(id)
	if err != nil {
		return nil, err
	}

	compiledSchemas.Store(schema.Name, compiled)
	return compiled, nil
}
