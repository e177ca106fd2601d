package logging

import (
	"errors"
	"fmt"
	"strings"
)

// Severity selects the host log function a message is sent to.
type Severity int

const (
	// SeverityError is for failures the caller could not recover from.
	SeverityError Severity = iota
	// SeverityWarning is for unexpected state the caller could work around.
	SeverityWarning
	// SeverityInfo is for normal operational events.
	SeverityInfo
	// SeverityDebug is for diagnostic detail.
	SeverityDebug
)

// ErrUnknownSeverity is returned by ParseSeverity for unrecognised names.
var ErrUnknownSeverity = errors.New("unknown severity")

// Severities lists every severity in descending order of importance.
func Severities() []Severity {
	return []Severity{SeverityError, SeverityWarning, SeverityInfo, SeverityDebug}
}

// Function returns the name of the host function for the severity.
func (s Severity) Function() string {
	switch s {
	case SeverityError:
		return "logError"
	case SeverityWarning:
		return "logWarning"
	case SeverityInfo:
		return "logInfo"
	case SeverityDebug:
		return "logDebug"
	default:
		return ""
	}
}

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityDebug:
		return "debug"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity parses a severity name (case-insensitive).
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error", "err":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	case "debug":
		return SeverityDebug, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
	}
}
