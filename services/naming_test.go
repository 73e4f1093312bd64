package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefix(t *testing.T) {
	tests := []struct {
		testType string
		want     string
		known    bool
	}{
		{"Referenstest", "REF", true},
		{"reference", "REF", true},
		{"Verifikationstest", "VER", true},
		{"VERIFICATION", "VER", true},
		{"Belastningstest", "BEL", true},
		{"load", "BEL", true},
		{"Utmattningstest", "UTM", true},
		{"Endurance", "UTM", true},
		{"Maxtest", "MAX", true},
		{"max", "MAX", true},
		{"Skapa", "SKA", true},
		{"create", "SKA", true},
		{" belastningstest ", "BEL", true},
		{"Spiktest", "REF", false},
		{"", "REF", false},
	}

	for _, tt := range tests {
		t.Run(tt.testType, func(t *testing.T) {
			got, known := Prefix(tt.testType)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestFormatTestName(t *testing.T) {
	assert.Equal(t, "01_REF_Login", FormatTestName(1, PrefixReference, "Login"))
	assert.Equal(t, "04_BEL_Checkout", FormatTestName(4, PrefixLoad, "Checkout"))
	assert.Equal(t, "10_MAX_Peak", FormatTestName(10, PrefixMax, "Peak"))
	assert.Equal(t, "100_UTM_Soak", FormatTestName(100, PrefixEndurance, "Soak"))
	assert.Equal(t, "02_SKA_with space", FormatTestName(2, PrefixCreate, "with space"))
}

func TestNamer(t *testing.T) {
	name := Namer(PrefixPacing, PacingSuffix(""))
	assert.Equal(t, "07_PAC_PACING", name(7))
}

func TestConfigSuffixes(t *testing.T) {
	assert.Equal(t, "PACING", PacingSuffix(""))
	assert.Equal(t, "PACING", PacingSuffix("  "))
	assert.Equal(t, "Kassa", PacingSuffix(" Kassa "))

	for _, label := range []string{"", "config", "Config", "KONFIG", "konfig", " Konfig "} {
		assert.Equal(t, "Konfig", GeneralSuffix(label), "label %q", label)
	}
	assert.Equal(t, "JVM", GeneralSuffix("JVM"))
}
