package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cratefit/bignum"
)

// DefaultLabel prefixes the box count line of the text format.
const DefaultLabel = "Boxes"

var (
	// ErrAssignment is returned when an assignment does not match its counts.
	ErrAssignment = errors.New("report: invalid assignment")

	// ErrFormat is returned for an unknown output format.
	ErrFormat = errors.New("report: unknown format")
)

// Format selects an encoding.
type Format string

const (
	// FormatText is the two-line human format.
	FormatText Format = "text"
	// FormatJSON is a single JSON object.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
	// FormatCBOR is deterministic CBOR.
	FormatCBOR Format = "cbor"
)

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML, FormatCBOR:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrFormat)
	}
}

// Result is the reported packing.
type Result struct {
	// Assignment[i] is the box edge (column) used along crate dimension i.
	Assignment []int

	// Boxes is the product of the assigned counts.
	Boxes *bignum.Nat
}

// document is the structured wire shape shared by JSON, YAML and CBOR.
// Boxes travels as hexadecimal text through bignum's text marshalling.
type document struct {
	Assignment []int       `json:"assignment" yaml:"assignment" cbor:"assignment"`
	Label      string      `json:"label" yaml:"label" cbor:"label"`
	Boxes      *bignum.Nat `json:"boxes" yaml:"boxes" cbor:"boxes"`
}
