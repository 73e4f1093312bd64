package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test LogEntryForm validation
func TestLogEntryFormValidation(t *testing.T) {
	validForm := LogEntryForm{
		Datum:    "2024-05-01T08:30:00Z",
		Typ:      "Belastningstest",
		Testnamn: "Checkout",
		Syfte:    "Baseline",
		Projekt:  "Alpha",
		Testare:  "kim",
	}
	assert.Empty(t, validForm.Validate())

	invalidForm := LogEntryForm{
		Datum:   "yesterday",
		Typ:     "Belastningstest",
		Projekt: "Alpha",
	}
	errs := invalidForm.Validate()
	require.True(t, errs.HasErrors())

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"Testnamn", "Syfte", "Testare", "Datum"}, fields)
}

func TestValidationErrorsMatchSentinel(t *testing.T) {
	form := AnalysisForm{Projekt: "Alpha"}
	var err error = form.Validate()

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "Testnamn is required")
	assert.Contains(t, err.Error(), "Analys is required")
}

func TestProjectFormTrimsName(t *testing.T) {
	form := ProjectForm{Projekt: "  Alpha "}
	assert.Empty(t, form.Validate())
	assert.Equal(t, "Alpha", form.Name())

	blank := ProjectForm{Projekt: "   "}
	assert.Len(t, blank.Validate(), 1)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "utc instant",
			input: "2024-01-15T09:00:00Z",
			want:  time.Date(2024, 1, 15, 10, 0, 0, 0, Stockholm),
		},
		{
			name:  "explicit offset",
			input: "2024-07-01T12:00:00+02:00",
			want:  time.Date(2024, 7, 1, 12, 0, 0, 0, Stockholm),
		},
		{
			name:  "no zone read as stockholm",
			input: "2024-07-01T12:00",
			want:  time.Date(2024, 7, 1, 12, 0, 0, 0, Stockholm),
		},
		{
			name:  "space separated",
			input: "2024-07-01 12:00:30",
			want:  time.Date(2024, 7, 1, 12, 0, 30, 0, Stockholm),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input, Stockholm)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, Stockholm, got.Location())
		})
	}

	_, err := ParseTimestamp("01/07/2024", Stockholm)
	assert.Error(t, err)
}

func TestPacingForm(t *testing.T) {
	form := PacingForm{Projekt: "Alpha", MalPerTimme: 1200, VirtuellaAnvandare: 10}
	assert.Empty(t, form.Validate())
	assert.Equal(t, 30.0, form.PacingSeconds())
	assert.Equal(t, "Mål: 1200/h, Virtuella användare: 10, Pacing: 30 s", form.Summary())

	form.Pacing = 12.5
	form.Skript = "checkout.js"
	assert.Equal(t, "Mål: 1200/h, Virtuella användare: 10, Pacing: 12.5 s, Skript: checkout.js", form.Summary())

	invalid := PacingForm{Pacing: -1}
	assert.Len(t, invalid.Validate(), 4)
}

func TestConfigFormValidation(t *testing.T) {
	form := ConfigForm{Projekt: "Alpha"}
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "Beskrivning", errs[0].Field)
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 3, 9, 7, 5, 0, 0, Stockholm)
	assert.Equal(t, "2024-03-09 07:05", FormatDateTime(ts))
}
