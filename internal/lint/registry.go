package lint

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Registry holds the known rules by name.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]*Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]*Rule)}
}

// Register adds a rule. Registering a name twice is an error.
func (r *Registry) Register(rule *Rule) error {
	if rule.Name == "" || rule.Create == nil {
		return errors.Newf("rule %q is incomplete", rule.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rules[rule.Name]; exists {
		return errors.Newf("rule %q registered twice", rule.Name)
	}
	r.rules[rule.Name] = rule
	return nil
}

// MustRegister is Register for package initialization.
func (r *Registry) MustRegister(rules ...*Rule) {
	for _, rule := range rules {
		if err := r.Register(rule); err != nil {
			panic(err)
		}
	}
}

// Get returns the rule with the given name, or nil.
func (r *Registry) Get(name string) *Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rules[name]
}

// Names returns all rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := lo.Keys(r.rules)
	sort.Strings(names)
	return names
}

// Rules returns all rules sorted by name.
func (r *Registry) Rules() []*Rule {
	return lo.Map(r.Names(), func(name string, _ int) *Rule { return r.Get(name) })
}

// Preset names.
const (
	PresetRecommended = "recommended"
	PresetAll         = "all"
	PresetNone        = "none"
)

// RuleSetting is the configuration of one rule.
type RuleSetting struct {
	Severity Severity
	Options  any
}

// Preset returns the rule settings of a named preset.
func (r *Registry) Preset(name string) (map[string]RuleSetting, error) {
	settings := make(map[string]RuleSetting)
	switch name {
	case "", PresetRecommended:
		for _, rule := range r.Rules() {
			if rule.Recommended != SeverityOff {
				settings[rule.Name] = RuleSetting{Severity: rule.Recommended}
			}
		}
	case PresetAll:
		for _, rule := range r.Rules() {
			settings[rule.Name] = RuleSetting{Severity: SeverityError}
		}
	case PresetNone:
	default:
		return nil, errors.WithHint(
			errors.Wrapf(ErrInvalidOptions, "unknown preset %q", name),
			"use one of: recommended, all, none")
	}
	return settings, nil
}

// ParseRuleSetting reads a rule entry from configuration. The entry is either
// a severity ("warn", 2, ...) or a map with "severity" and "options" keys.
func ParseRuleSetting(v any) (RuleSetting, error) {
	switch val := v.(type) {
	case map[string]any:
		return parseSettingMap(val)
	case map[any]any:
		m, _ := stringKeys(val).(map[string]any)
		return parseSettingMap(m)
	default:
		sev, err := ParseSeverity(v)
		return RuleSetting{Severity: sev}, err
	}
}

func parseSettingMap(m map[string]any) (RuleSetting, error) {
	setting := RuleSetting{Severity: SeverityError, Options: m["options"]}
	if raw, ok := m["severity"]; ok {
		sev, err := ParseSeverity(raw)
		if err != nil {
			return RuleSetting{}, err
		}
		setting.Severity = sev
	}
	for key := range m {
		if key != "severity" && key != "options" {
			return RuleSetting{}, errors.Wrapf(ErrInvalidOptions, "unexpected key %q in rule setting", key)
		}
	}
	return setting, nil
}
