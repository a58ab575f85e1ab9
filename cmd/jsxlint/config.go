package main

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/jsxlint/internal/jsxlint"
	"github.com/yacobolo/jsxlint/internal/lint"
)

const defaultConfigFile = ".jsxlint.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence). Only flags set on the command line are
	// loaded so that flag defaults never shadow config file values.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return errors.Wrap(err, "loading command flags")
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return errors.Wrapf(err, "loading config file %s", configPath)
		}
	}

	// 2. Environment variables (JSXLINT_* prefix)
	if err := k.Load(env.Provider("JSXLINT_", ".", func(s string) string {
		// JSXLINT_LINT_STRICT -> lint.strict
		// JSXLINT_PRESET -> preset
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "JSXLINT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return errors.Wrap(err, "loading environment variables")
	}

	return nil
}

// buildLintConfig constructs the library's LintConfig from koanf state.
// args are positional paths and take precedence over configured paths.
func buildLintConfig(reg *lint.Registry, args []string) (jsxlint.LintConfig, error) {
	var scanPaths []string
	switch {
	case len(args) > 0:
		scanPaths = args
	case len(k.Strings("paths")) > 0:
		scanPaths = k.Strings("paths")
	case len(k.Strings("lint.paths")) > 0:
		scanPaths = k.Strings("lint.paths")
	default:
		scanPaths = jsxlint.DefaultScanPaths
	}

	settings, err := buildRuleSettings(reg)
	if err != nil {
		return jsxlint.LintConfig{}, err
	}

	return jsxlint.LintConfig{
		ScanPaths:          scanPaths,
		Rules:              settings,
		Fix:                getBoolWithFallback("fix", "lint.fix", false),
		Verbose:            getBoolWithFallback("verbose", "verbose", false),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		Concurrency:        getIntWithFallback("concurrency", "lint.concurrency", 0),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		ShowStats:          true,
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}, nil
}

// buildRuleSettings starts from the configured preset, applies the rules
// section of the config file and then --rule overrides.
func buildRuleSettings(reg *lint.Registry) (map[string]lint.RuleSetting, error) {
	settings, err := reg.Preset(getStringWithFallback("preset", "preset", lint.PresetRecommended))
	if err != nil {
		return nil, err
	}

	if raw := k.Get("rules"); raw != nil {
		entries, ok := raw.(map[string]interface{})
		if !ok {
			return nil, errors.Wrap(lint.ErrInvalidOptions, "rules must be a map of rule name to setting")
		}
		for name, entry := range entries {
			setting, err := lint.ParseRuleSetting(entry)
			if err != nil {
				return nil, errors.Wrapf(err, "rule %s", name)
			}
			settings[name] = setting
		}
	}

	for _, override := range k.Strings("rule") {
		name, value, ok := strings.Cut(override, "=")
		if !ok {
			return nil, errors.WithHint(
				errors.Wrapf(lint.ErrInvalidOptions, "invalid --rule %q", override),
				"use --rule name=severity, e.g. --rule max-indentation=warn")
		}
		severity, err := lint.ParseSeverity(value)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %s", name)
		}
		setting := settings[name]
		setting.Severity = severity
		settings[name] = setting
	}

	return settings, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
