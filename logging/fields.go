package logging

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultFieldName is the payload field used for every severity unless
// configured otherwise.
const DefaultFieldName = "message"

// ErrInvalidFieldNames is returned when a FieldNames table fails validation.
var ErrInvalidFieldNames = errors.New("payload field names are invalid")

// FieldNames maps each severity to the payload field that carries the log
// text. Host revisions disagree on these names, so they are configuration.
type FieldNames struct {
	Error   string `yaml:"error" validate:"required,ne=xcall"`
	Warning string `yaml:"warning" validate:"required,ne=xcall"`
	Info    string `yaml:"info" validate:"required,ne=xcall"`
	Debug   string `yaml:"debug" validate:"required,ne=xcall"`
}

var (
	// RevisionMessage sends the text as "message" for every severity.
	RevisionMessage = FieldNames{
		Error:   DefaultFieldName,
		Warning: DefaultFieldName,
		Info:    DefaultFieldName,
		Debug:   DefaultFieldName,
	}

	// RevisionSeverity names the field after the severity ("error", "warning", ...).
	RevisionSeverity = FieldNames{
		Error:   "error",
		Warning: "warning",
		Info:    "info",
		Debug:   "debug",
	}

	// RevisionText sends the text as "text" for every severity.
	RevisionText = FieldNames{
		Error:   "text",
		Warning: "text",
		Info:    "text",
		Debug:   "text",
	}
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// For returns the payload field name for s.
func (f FieldNames) For(s Severity) string {
	switch s {
	case SeverityError:
		return f.Error
	case SeverityWarning:
		return f.Warning
	case SeverityInfo:
		return f.Info
	case SeverityDebug:
		return f.Debug
	default:
		return ""
	}
}

// Validate checks that every severity has a usable field name.
func (f FieldNames) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(f); err != nil {
		return errors.Join(ErrInvalidFieldNames, err)
	}
	return nil
}

// ParseFieldNames reads a field name table from YAML, e.g.
//
//	error: error
//	warning: warning
//	info: text
//
// Severities left out use DefaultFieldName.
func ParseFieldNames(data []byte) (FieldNames, error) {
	f := RevisionMessage
	if err := yaml.Unmarshal(data, &f); err != nil {
		return FieldNames{}, errors.Join(ErrInvalidFieldNames, err)
	}
	if err := f.Validate(); err != nil {
		return FieldNames{}, err
	}
	return f, nil
}
