package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity(t *testing.T) {
	t.Parallel()

	tt := []struct {
		severity Severity
		function string
		name     string
	}{
		{SeverityError, "logError", "error"},
		{SeverityWarning, "logWarning", "warning"},
		{SeverityInfo, "logInfo", "info"},
		{SeverityDebug, "logDebug", "debug"},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.function, tc.severity.Function())
			assert.Equal(t, tc.name, tc.severity.String())

			got, err := ParseSeverity(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.severity, got)
		})
	}

	t.Run("aliases", func(t *testing.T) {
		t.Parallel()

		for alias, want := range map[string]Severity{"WARN": SeverityWarning, " Err ": SeverityError} {
			got, err := ParseSeverity(alias)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		_, err := ParseSeverity("fatal")
		require.ErrorIs(t, err, ErrUnknownSeverity)
		assert.Equal(t, "", Severity(9).Function())
		assert.Equal(t, "severity(9)", Severity(9).String())
	})
}

func TestParseFieldNames(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name    string
		yaml    string
		want    FieldNames
		wantErr error
	}{
		{
			name: "empty document uses defaults",
			yaml: "",
			want: RevisionMessage,
		},
		{
			name: "full table",
			yaml: "error: error\nwarning: warning\ninfo: info\ndebug: debug\n",
			want: RevisionSeverity,
		},
		{
			name: "partial table",
			yaml: "info: text\n",
			want: FieldNames{Error: "message", Warning: "message", Info: "text", Debug: "message"},
		},
		{
			name:    "explicit empty name",
			yaml:    "debug: \"\"\n",
			wantErr: ErrInvalidFieldNames,
		},
		{
			name:    "reserved name",
			yaml:    "error: xcall\n",
			wantErr: ErrInvalidFieldNames,
		},
		{
			name:    "malformed yaml",
			yaml:    "error: [unterminated\n",
			wantErr: ErrInvalidFieldNames,
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFieldNames([]byte(tc.yaml))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRevisionsValid(t *testing.T) {
	t.Parallel()

	for _, f := range []FieldNames{RevisionMessage, RevisionSeverity, RevisionText} {
		require.NoError(t, f.Validate())
	}
	assert.Equal(t, "", RevisionText.For(Severity(7)))
}
