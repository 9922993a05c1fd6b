package sensortype

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_KnownCodes(t *testing.T) {
	d := Default()

	tests := []struct {
		raw          string
		wantClean    string
		wantCategory string
	}{
		{"GTECH.B026E_MH1\r", "GTECH.B026E_MH1", "Electrical mains meter, high voltage (480V)"},
		{"GTECH.B026E_ML1\r", "GTECH.B026E_ML1", "Electrical mains meter, low voltage (208V)"},
		{"GTECH.B145E_UH2\r", "GTECH.B145E_UH2", "Electrical sub-meter, high voltage (480V)"},
		{"GTECH.B145E_UL2\r", "GTECH.B145E_UL2", "Electrical sub-meter, low voltage (208V)"},
		{"GTECH.B003E_MS1\r", "GTECH.B003E_MS1", "Electrical mains transformer (4160V - 480V)"},
		// Same name without the trailing CR still resolves: the digit that
		// gets dropped instead of the CR was never part of the code.
		{"GTECH.B026E_MH1", "GTECH.B026E_MH1", "Electrical mains meter, high voltage (480V)"},
	}

	for _, tt := range tests {
		clean, category := d.Decode(tt.raw)
		assert.Equal(t, tt.wantClean, clean, "clean name for %q", tt.raw)
		assert.Equal(t, tt.wantCategory, category, "category for %q", tt.raw)
	}
}

func TestDecode_Malformed(t *testing.T) {
	d := Default()

	// No B### building code, empty input, junk suffix: degrade to unknown,
	// never panic or error.
	for _, raw := range []string{
		"",
		"\r",
		"GTECH.NOCODE\r",
		"B12X_MH1\r",
		"GTECH.B026\r",
		"GTECH.B026E_ZZ9\r",
		"GTECH.B026!!!\r",
	} {
		clean, category := d.Decode(raw)
		assert.Equal(t, Unknown, category, "category for %q", raw)
		assert.NotContains(t, clean, "\r")
	}
}

func TestDecode_Deterministic(t *testing.T) {
	d := Default()
	raw := "GTECH.B026E_MH1\r"
	c1, t1 := d.Decode(raw)
	c2, t2 := d.Decode(raw)
	assert.Equal(t, c1, c2)
	assert.Equal(t, t1, t2)
}

func TestCleanName_StripsExactlyOneCR(t *testing.T) {
	assert.Equal(t, "abc", CleanName("abc\r"))
	assert.Equal(t, "abc", CleanName("abc"))
	assert.Equal(t, "abc\r", CleanName("abc\r\r"))
	assert.Equal(t, "", CleanName(""))
}

func TestNewDecoder_ExtendsAndShadowsDefaults(t *testing.T) {
	d := NewDecoder(map[string]string{
		"EGH": "Gas meter, high pressure",
		"EMH": "Overridden mains meter",
	})

	assert.Equal(t, "Gas meter, high pressure", d.Category("GTECH.B026E_GH1\r"))
	assert.Equal(t, "Overridden mains meter", d.Category("GTECH.B026E_MH1\r"))
	// untouched defaults survive the merge
	assert.Equal(t, "Electrical mains meter, low voltage (208V)", d.Category("GTECH.B026E_ML1\r"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sensor_types.yaml")
	content := "sensor_types:\n  EGH: Gas meter, high pressure\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Gas meter, high pressure", d.Category("GTECH.B026E_GH1\r"))
	assert.Equal(t, "Electrical mains meter, high voltage (480V)", d.Category("GTECH.B026E_MH1\r"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestUnits(t *testing.T) {
	assert.Equal(t, "kWh", Units("Active Energy Delivered"))
	assert.Equal(t, "kW", Units("Active Power"))
	assert.Equal(t, "", Units("Reactive Power"))
	assert.Equal(t, "", Units(""))
}
