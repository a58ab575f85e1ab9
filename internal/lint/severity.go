package lint

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Severity is the configured level of a rule.
type Severity int

// Severity levels. SeverityOff disables a rule.
const (
	SeverityOff Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "off"
	}
}

// ParseSeverity converts a configuration value to a Severity. Accepted
// forms are off|warn|warning|error and the numeric levels 0, 1 and 2.
func ParseSeverity(v any) (Severity, error) {
	switch val := v.(type) {
	case Severity:
		return val, nil
	case int:
		return severityFromLevel(val)
	case int64:
		return severityFromLevel(int(val))
	case float64:
		return severityFromLevel(int(val))
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "off", "0":
			return SeverityOff, nil
		case "warn", "warning", "1":
			return SeverityWarning, nil
		case "error", "2":
			return SeverityError, nil
		}
	}
	return SeverityOff, errors.Wrapf(ErrInvalidOptions, "invalid severity %s", fmt.Sprint(v))
}

func severityFromLevel(level int) (Severity, error) {
	if level < int(SeverityOff) || level > int(SeverityError) {
		return SeverityOff, errors.Wrapf(ErrInvalidOptions, "invalid severity level %d", level)
	}
	return Severity(level), nil
}
