// Package sensortype classifies raw meter source names.
//
// A stored source name looks like "GTECH.B026E_MH1\r": a site prefix, a
// building code (B + three digits), an encoded meter suffix, and a trailing
// carriage return left behind by the ingestion process. The decoder turns
// that into a clean display name and a human-readable meter category.
package sensortype

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Unknown is returned for any source name the decoder cannot classify.
// Decoding never fails; malformed input degrades to this label.
const Unknown = "unknown"

var buildingCodePattern = regexp.MustCompile(`B\d{3}(.*)`)

// defaultTypes maps the short alphabetic meter codes embedded in source
// names to their descriptions. The table is deliberately small; deployments
// extend it through a YAML file (see LoadFile) as new meter classes appear.
var defaultTypes = map[string]string{
	"EMS": "Electrical mains transformer (4160V - 480V)",
	"EMH": "Electrical mains meter, high voltage (480V)",
	"EML": "Electrical mains meter, low voltage (208V)",
	"EUH": "Electrical sub-meter, high voltage (480V)",
	"EUL": "Electrical sub-meter, low voltage (208V)",
}

// Decoder resolves meter codes against a fixed lookup table.
type Decoder struct {
	types map[string]string
}

// NewDecoder builds a decoder over the given code table. Entries shadow the
// built-in defaults; pass nil for defaults only.
func NewDecoder(types map[string]string) *Decoder {
	merged := make(map[string]string, len(defaultTypes)+len(types))
	for code, label := range defaultTypes {
		merged[code] = label
	}
	for code, label := range types {
		merged[code] = label
	}
	return &Decoder{types: merged}
}

// Default returns a decoder with only the built-in table.
func Default() *Decoder {
	return NewDecoder(nil)
}

type typesFile struct {
	SensorTypes map[string]string `yaml:"sensor_types"`
}

// LoadFile reads additional code table entries from a YAML file of the form
//
//	sensor_types:
//	  EMS: Electrical mains transformer (4160V - 480V)
//
// and merges them over the defaults.
func LoadFile(path string) (*Decoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sensor types file: %w", err)
	}
	var f typesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse sensor types file: %w", err)
	}
	return NewDecoder(f.SensorTypes), nil
}

// CleanName strips exactly one trailing carriage return, if present. That is
// the only normalization applied to stored source names on the way out.
func CleanName(raw string) string {
	if strings.HasSuffix(raw, "\r") {
		return raw[:len(raw)-1]
	}
	return raw
}

// Decode classifies a raw source name into its clean display name and meter
// category label. It never fails: anything unclassifiable gets Unknown.
func (d *Decoder) Decode(raw string) (cleanName, category string) {
	return CleanName(raw), d.Category(raw)
}

// Category extracts the meter code following the B### building code and
// looks it up. The last character of the suffix is assumed to be the
// trailing carriage return and is dropped before filtering; only letters
// survive, yielding the short code (historically three letters).
func (d *Decoder) Category(raw string) string {
	m := buildingCodePattern.FindStringSubmatch(raw)
	if m == nil {
		return Unknown
	}
	suffix := m[1]
	if suffix != "" {
		suffix = suffix[:len(suffix)-1]
	}
	var code strings.Builder
	for _, r := range suffix {
		if unicode.IsLetter(r) {
			code.WriteRune(r)
		}
	}
	if label, ok := d.types[code.String()]; ok {
		return label
	}
	return Unknown
}
