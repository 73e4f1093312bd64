package models

import "strings"

// Project groups an ordered sequence of test logs.
type Project struct {
	Name     string `json:"name" db:"NAMN"`
	Archived bool   `json:"archived" db:"ARKIVERAD"`
}

// ProjectForm is the payload of project creation.
type ProjectForm struct {
	Projekt string `json:"Projekt"`
}

// Validate validates the project form data
func (f *ProjectForm) Validate() ValidationErrors {
	var errors ValidationErrors

	errors.required("Projekt", f.Projekt)
	if len(strings.TrimSpace(f.Projekt)) > 255 {
		errors.add("Projekt", "Projekt must be less than 256 characters")
	}

	return errors
}

// ValidateProjectName checks a project name taken from a path or query.
func ValidateProjectName(name string) ValidationErrors {
	var errors ValidationErrors
	errors.required("Projekt", name)
	return errors
}

// Name returns the trimmed project name.
func (f *ProjectForm) Name() string {
	return strings.TrimSpace(f.Projekt)
}
