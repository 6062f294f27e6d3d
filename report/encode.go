package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// cborEnc uses Core Deterministic Encoding (RFC 8949 §4.2): the same result
// always produces identical bytes.
var cborEnc cbor.EncMode

// cborDec mirrors cborEnc's text marshalling so Boxes round-trips.
var cborDec cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// bignum.Nat has only unexported fields; without this it would encode
	// as an empty map.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	cborEnc, err = encOptions.EncMode()
	if err != nil {
		panic("report: CBOR encoder initialization failed: " + err.Error())
	}

	cborDec, err = cbor.DecOptions{
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("report: CBOR decoder initialization failed: " + err.Error())
	}
}

// Encode writes res to w in the given format. An empty label means
// DefaultLabel. The whole document is rendered before anything is written,
// so a failed encode writes nothing.
func Encode(w io.Writer, res *Result, format Format, label string) error {
	if res == nil || res.Boxes == nil {
		return ErrAssignment
	}
	if label == "" {
		label = DefaultLabel
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatText, "":
		data = appendText(nil, res, label)
	case FormatJSON:
		data, err = json.Marshal(toDocument(res, label))
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(toDocument(res, label))
	case FormatCBOR:
		data, err = cborEnc.Marshal(toDocument(res, label))
	default:
		return fmt.Errorf("%q: %w", format, ErrFormat)
	}
	if err != nil {
		return fmt.Errorf("report: encode %s: %w", format, err)
	}
	_, err = w.Write(data)

	return err
}

// appendText renders the two text lines.
func appendText(buf []byte, res *Result, label string) []byte {
	buf = append(buf, "Assignment"...)
	for _, j := range res.Assignment {
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(j), 10)
	}
	buf = append(buf, '\n')
	buf = append(buf, label...)
	buf = append(buf, ' ')
	buf = append(buf, res.Boxes.String()...)

	return append(buf, '\n')
}

func toDocument(res *Result, label string) document {
	return document{Assignment: res.Assignment, Label: label, Boxes: res.Boxes}
}

// Decode parses a structured encoding produced by Encode and returns the
// result together with its label.
func Decode(data []byte, format Format) (*Result, string, error) {
	var (
		doc document
		err error
	)
	switch format {
	case FormatJSON:
		err = json.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatCBOR:
		err = cborDec.Unmarshal(data, &doc)
	default:
		return nil, "", fmt.Errorf("%q: %w", format, ErrFormat)
	}
	if err != nil {
		return nil, "", fmt.Errorf("report: decode %s: %w", format, err)
	}
	if doc.Boxes == nil {
		return nil, "", fmt.Errorf("report: decode %s: missing boxes: %w", format, ErrAssignment)
	}

	return &Result{Assignment: doc.Assignment, Boxes: doc.Boxes}, doc.Label, nil
}
