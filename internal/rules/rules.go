// Package rules contains the jsxlint rule set.
package rules

import "github.com/yacobolo/jsxlint/internal/lint"

// All returns a fresh instance of every rule.
func All() []*lint.Rule {
	return []*lint.Rule{
		MaxIndentation(),
		NoDeprecatedElement(),
		NoHrefAssignment(),
		NoUnhandledScheduling(),
		NoUnstableDependencies(),
		PrivateComponentMethods(),
		RequireStatePropertyDefinition(),
		RequireTypography(),
		UnregisterEvents(),
	}
}

// NewRegistry returns a registry holding every rule.
func NewRegistry() *lint.Registry {
	reg := lint.NewRegistry()
	reg.MustRegister(All()...)
	return reg
}
