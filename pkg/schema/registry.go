package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dmitrymomot/formguard/pkg/forms"
)

// Violation is one schema failure at a payload location.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ViolationError lists every schema failure of a payload.
type ViolationError struct {
	Kind       forms.Kind
	Violations []Violation
}

func (e *ViolationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return fmt.Sprintf("%s: %s: %s", ErrSchemaViolation, e.Kind, strings.Join(parts, "; "))
}

func (e *ViolationError) Is(target error) bool {
	return target == ErrSchemaViolation
}

// Registry generates JSON Schemas for form payloads and checks request
// bodies against them. Schemas are built and compiled on first use.
type Registry struct {
	reflector *invopop.Reflector

	mu       sync.RWMutex
	raw      map[forms.Kind][]byte
	compiled map[forms.Kind]*jsonschema.Schema
}

func NewRegistry() *Registry {
	return &Registry{
		reflector: &invopop.Reflector{
			Anonymous:      true,
			ExpandedStruct: true,
			// Missing keys read as "" and are reported by the form checks.
			RequiredFromJSONSchemaTags: true,
		},
		raw:      make(map[forms.Kind][]byte),
		compiled: make(map[forms.Kind]*jsonschema.Schema),
	}
}

// Schema returns the JSON Schema document for kind.
func (r *Registry) Schema(kind forms.Kind) ([]byte, error) {
	r.mu.RLock()
	raw, ok := r.raw[kind]
	r.mu.RUnlock()
	if ok {
		return raw, nil
	}

	def, ok := forms.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if raw, ok := r.raw[kind]; ok {
		return raw, nil
	}

	s := r.reflector.Reflect(def.New())
	s.Title = def.Title
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema for %s: %w", kind, err)
	}
	r.raw[kind] = raw
	return raw, nil
}

// Validate checks a JSON body against the schema for kind. Schema failures
// are returned as a *ViolationError.
func (r *Registry) Validate(kind forms.Kind, body []byte) error {
	compiled, err := r.compile(kind)
	if err != nil {
		return err
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	err = compiled.Validate(payload)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	violations := collect(ve, nil)
	slices.SortStableFunc(violations, func(a, b Violation) int { return strings.Compare(a.Field, b.Field) })
	return &ViolationError{Kind: kind, Violations: violations}
}

func (r *Registry) compile(kind forms.Kind) (*jsonschema.Schema, error) {
	r.mu.RLock()
	compiled, ok := r.compiled[kind]
	r.mu.RUnlock()
	if ok {
		return compiled, nil
	}

	raw, err := r.Schema(kind)
	if err != nil {
		return nil, err
	}

	loc := string(kind) + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(loc, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCompileSchema, kind, err)
	}
	compiled, err = compiler.Compile(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCompileSchema, kind, err)
	}

	r.mu.Lock()
	r.compiled[kind] = compiled
	r.mu.Unlock()
	return compiled, nil
}

// collect flattens the cause tree into leaf violations.
func collect(ve *jsonschema.ValidationError, out []Violation) []Violation {
	if len(ve.Causes) == 0 {
		field := strings.TrimPrefix(ve.InstanceLocation, "/")
		if field == "" {
			field = "body"
		}
		return append(out, Violation{Field: field, Message: ve.Message})
	}
	for _, cause := range ve.Causes {
		out = collect(cause, out)
	}
	return out
}
