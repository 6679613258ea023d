package report

import (
	"fmt"
	"strings"

	"github.com/gnames/gnfmt"
	"gopkg.in/yaml.v3"
)

// Format determines which files the report is written to.
type Format int

const (
	// Text writes only the plain text report.
	Text Format = iota
	// JSON adds a JSON copy of the report.
	JSON
	// YAML adds a YAML copy of the report.
	YAML
)

var formats = map[string]Format{
	"text": Text,
	"json": JSON,
	"yaml": YAML,
}

// NewFormat converts a string to a Format. Unknown strings give Text and
// false.
func NewFormat(s string) (Format, bool) {
	res, ok := formats[strings.ToLower(strings.TrimSpace(s))]
	return res, ok
}

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "text"
	}
}

// Ext returns the file extension of a structured copy, empty for Text.
func (f Format) Ext() string {
	switch f {
	case JSON:
		return ".json"
	case YAML:
		return ".yaml"
	default:
		return ""
	}
}

// Encode returns a structured copy of the population in the given format.
func (p Population) Encode(f Format) ([]byte, error) {
	switch f {
	case JSON:
		enc := gnfmt.GNjson{Pretty: true}
		return enc.Encode(p)
	case YAML:
		return yaml.Marshal(p)
	default:
		return nil, fmt.Errorf("format %s has no structured encoding", f)
	}
}
