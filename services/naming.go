package services

import (
	"fmt"
	"strings"

	"github.com/blogem/ptlog/repositories"
)

// Name prefixes stored in TESTNAMN.
const (
	PrefixReference    = "REF"
	PrefixVerification = "VER"
	PrefixLoad         = "BEL"
	PrefixEndurance    = "UTM"
	PrefixMax          = "MAX"
	PrefixCreate       = "SKA"
	PrefixPacing       = "PAC"
	PrefixGeneral      = "GEN"
)

const (
	defaultPacingSuffix  = "PACING"
	defaultGeneralSuffix = "Konfig"
)

// typePrefixes maps lower-cased test types, canonical and descriptive, to prefixes.
var typePrefixes = map[string]string{
	"reference":         PrefixReference,
	"referenstest":      PrefixReference,
	"verification":      PrefixVerification,
	"verifikationstest": PrefixVerification,
	"load":              PrefixLoad,
	"belastningstest":   PrefixLoad,
	"endurance":         PrefixEndurance,
	"utmattningstest":   PrefixEndurance,
	"max":               PrefixMax,
	"maxtest":           PrefixMax,
	"create":            PrefixCreate,
	"skapa":             PrefixCreate,
}

// Prefix returns the prefix for a test type. Unrecognized types yield
// PrefixReference and false.
func Prefix(testType string) (string, bool) {
	prefix, ok := typePrefixes[strings.ToLower(strings.TrimSpace(testType))]
	if !ok {
		return PrefixReference, false
	}
	return prefix, true
}

// FormatTestName builds <NN>_<PREFIX>_<suffix>. Ordinals of 100 and above
// simply widen.
func FormatTestName(ordinal int, prefix, suffix string) string {
	return fmt.Sprintf("%02d_%s_%s", ordinal, prefix, suffix)
}

// Namer returns the repositories.NameFunc for a prefix and suffix.
func Namer(prefix, suffix string) repositories.NameFunc {
	return func(ordinal int) string {
		return FormatTestName(ordinal, prefix, suffix)
	}
}

// PacingSuffix returns the label of a pacing entry, PACING when none is given.
func PacingSuffix(label string) string {
	if label = strings.TrimSpace(label); label != "" {
		return label
	}
	return defaultPacingSuffix
}

// GeneralSuffix returns the label of a general configuration entry. Empty
// labels and any spelling of config/konfig become Konfig.
func GeneralSuffix(label string) string {
	label = strings.TrimSpace(label)
	switch strings.ToLower(label) {
	case "", "config", "konfig":
		return defaultGeneralSuffix
	}
	return label
}
