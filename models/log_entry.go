package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TypeConfiguration is stored in TYP for pacing and general configuration
// entries instead of a test type.
const TypeConfiguration = "Konfiguration"

// LogEntry is one row of PTLOG.
type LogEntry struct {
	Timestamp time.Time `db:"DATUM"`
	Type      string    `db:"TYP"`
	Name      string    `db:"TESTNAMN"`
	Purpose   string    `db:"SYFTE"`
	Analysis  *string   `db:"ANALYS"`
	Project   string    `db:"PROJEKT"`
	Tester    string    `db:"TESTARE"`
}

// LogEntryForm is the payload of a standard test-log insert.
type LogEntryForm struct {
	Datum    string `json:"Datum"`
	Typ      string `json:"Typ"`
	Testnamn string `json:"Testnamn"`
	Syfte    string `json:"Syfte"`
	Projekt  string `json:"Projekt"`
	Testare  string `json:"Testare"`
}

// Validate validates the log entry form data
func (f *LogEntryForm) Validate() ValidationErrors {
	var errors ValidationErrors

	errors.required("Datum", f.Datum)
	errors.required("Typ", f.Typ)
	errors.required("Testnamn", f.Testnamn)
	errors.required("Syfte", f.Syfte)
	errors.required("Projekt", f.Projekt)
	errors.required("Testare", f.Testare)

	if strings.TrimSpace(f.Datum) != "" {
		if _, err := ParseTimestamp(f.Datum, Stockholm); err != nil {
			errors.add("Datum", "Datum must be an ISO 8601 timestamp")
		}
	}

	return errors
}

// PacingForm records the pacing configuration used for a test.
type PacingForm struct {
	Projekt            string  `json:"Projekt"`
	Testnamn           string  `json:"Testnamn"`
	MalPerTimme        float64 `json:"MalPerTimme"`
	VirtuellaAnvandare int     `json:"VirtuellaAnvandare"`
	Pacing             float64 `json:"Pacing"`
	Skript             string  `json:"Skript"`
	Testare            string  `json:"Testare"`
}

// Validate validates the pacing form data
func (f *PacingForm) Validate() ValidationErrors {
	var errors ValidationErrors

	errors.required("Projekt", f.Projekt)
	if f.MalPerTimme <= 0 {
		errors.add("MalPerTimme", "MalPerTimme must be greater than zero")
	}
	if f.VirtuellaAnvandare <= 0 {
		errors.add("VirtuellaAnvandare", "VirtuellaAnvandare must be greater than zero")
	}
	if f.Pacing < 0 {
		errors.add("Pacing", "Pacing must not be negative")
	}

	return errors
}

// PacingSeconds returns the supplied pacing, or the pacing that lets the
// virtual users reach the hourly target when none was supplied.
func (f *PacingForm) PacingSeconds() float64 {
	if f.Pacing > 0 {
		return f.Pacing
	}
	return 3600 * float64(f.VirtuellaAnvandare) / f.MalPerTimme
}

// Summary is the text stored in SYFTE for a pacing entry.
func (f *PacingForm) Summary() string {
	s := fmt.Sprintf("Mål: %s/h, Virtuella användare: %d, Pacing: %s s",
		formatNumber(f.MalPerTimme), f.VirtuellaAnvandare, formatNumber(f.PacingSeconds()))
	if script := strings.TrimSpace(f.Skript); script != "" {
		s += ", Skript: " + script
	}
	return s
}

// ConfigForm records a general configuration note.
type ConfigForm struct {
	Projekt     string `json:"Projekt"`
	Beskrivning string `json:"Beskrivning"`
	Testare     string `json:"Testare"`
	Testnamn    string `json:"Testnamn"`
}

// Validate validates the configuration form data
func (f *ConfigForm) Validate() ValidationErrors {
	var errors ValidationErrors

	errors.required("Projekt", f.Projekt)
	errors.required("Beskrivning", f.Beskrivning)

	return errors
}

// AnalysisForm targets one log by project and test name.
type AnalysisForm struct {
	Projekt  string `json:"Projekt"`
	Testnamn string `json:"Testnamn"`
	Analys   string `json:"Analys"`
}

// Validate validates the analysis form data
func (f *AnalysisForm) Validate() ValidationErrors {
	var errors ValidationErrors

	errors.required("Projekt", f.Projekt)
	errors.required("Testnamn", f.Testnamn)
	errors.required("Analys", f.Analys)

	return errors
}

// DeleteLogForm targets one log for removal.
type DeleteLogForm struct {
	Projekt  string `json:"Projekt"`
	Testnamn string `json:"Testnamn"`
}

// Validate validates the delete form data
func (f *DeleteLogForm) Validate() ValidationErrors {
	var errors ValidationErrors

	errors.required("Projekt", f.Projekt)
	errors.required("Testnamn", f.Testnamn)

	return errors
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
