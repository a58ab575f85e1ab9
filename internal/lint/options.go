package lint

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Options carries the raw configuration of one rule.
type Options struct {
	rule string
	raw  any
}

// NewOptions wraps raw options for rule. raw is usually a map decoded from YAML.
func NewOptions(rule string, raw any) *Options {
	return &Options{rule: rule, raw: raw}
}

// IsSet reports whether any options were given.
func (o *Options) IsSet() bool {
	return o != nil && o.raw != nil
}

// Decode copies the options onto target, which should already hold the
// defaults. Keys map through json struct tags; unknown keys are an error.
func (o *Options) Decode(target any) error {
	if !o.IsSet() {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Result:      target,
	})
	if err != nil {
		return errors.Wrapf(err, "decoder for %s", o.rule)
	}
	normalized, err := normalizeJSON(o.raw)
	if err != nil {
		return errors.Wrapf(ErrInvalidOptions, "%s: %v", o.rule, err)
	}
	if err := decoder.Decode(normalized); err != nil {
		return errors.Wrapf(ErrInvalidOptions, "%s: %v", o.rule, err)
	}
	return nil
}

// normalizeJSON converts YAML-decoded values (map[any]any, int) into the
// shapes encoding/json produces, which the schema validator expects.
func normalizeJSON(v any) (any, error) {
	data, err := json.Marshal(stringKeys(v))
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func stringKeys(v any) any {
	switch val := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			if s, ok := k.(string); ok {
				m[s] = stringKeys(item)
			}
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			m[k] = stringKeys(item)
		}
		return m
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = stringKeys(item)
		}
		return out
	default:
		return v
	}
}

var (
	schemaMu    sync.Mutex
	schemaCache = map[string]*jsonschema.Schema{}
)

func compiledSchema(rule *Rule) (*jsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if s, ok := schemaCache[rule.Schema]; ok {
		return s, nil
	}
	s, err := jsonschema.CompileString(rule.Name+".schema.json", rule.Schema)
	if err != nil {
		return nil, errors.Wrapf(err, "compile options schema of %s", rule.Name)
	}
	schemaCache[rule.Schema] = s
	return s, nil
}

// ValidateOptions checks raw options against the rule schema.
func ValidateOptions(rule *Rule, raw any) error {
	if raw == nil {
		return nil
	}
	if rule.Schema == "" {
		return errors.WithHint(
			errors.Wrapf(ErrInvalidOptions, "%s does not take options", rule.Name),
			"remove the options block for this rule")
	}
	schema, err := compiledSchema(rule)
	if err != nil {
		return err
	}
	normalized, err := normalizeJSON(raw)
	if err != nil {
		return errors.Wrapf(ErrInvalidOptions, "%s: %v", rule.Name, err)
	}
	if err := schema.Validate(normalized); err != nil {
		return errors.Wrapf(ErrInvalidOptions, "%s: %v", rule.Name, err)
	}
	return nil
}
