package report_test

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cratefit/report"
)

func TestNew_ScenarioA(t *testing.T) {
	res, err := report.New([][]uint64{{3, 2}, {3, 2}}, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, "6", res.Boxes.String())

	var out bytes.Buffer
	require.NoError(t, report.Encode(&out, res, report.FormatText, ""))
	assert.Equal(t, "Assignment 0 1\nBoxes 6\n", out.String())
}

func TestNew_ScenarioB(t *testing.T) {
	res, err := report.New([][]uint64{{1}}, []int{0})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, report.Encode(&out, res, report.FormatText, "Boxes"))
	assert.Equal(t, "Assignment 0\nBoxes 1\n", out.String())
}

func TestNew_ProductExceedsWord(t *testing.T) {
	const big64 = ^uint64(0)
	counts := [][]uint64{{big64, 1, 1}, {1, big64, 1}, {1, 1, big64}}
	res, err := report.New(counts, []int{0, 1, 2})
	require.NoError(t, err)

	want := new(big.Int).SetUint64(big64)
	want.Mul(want, want).Mul(want, new(big.Int).SetUint64(big64))
	assert.Equal(t, want.Text(16), res.Boxes.String())
}

func TestNew_ZeroCount(t *testing.T) {
	res, err := report.New([][]uint64{{0, 4}, {2, 9}}, []int{0, 1})
	require.NoError(t, err)
	assert.True(t, res.Boxes.IsZero())
}

func TestNew_InvalidAssignment(t *testing.T) {
	counts := [][]uint64{{1, 2}, {3, 4}}
	for _, a := range [][]int{nil, {0}, {0, 0}, {0, 2}, {-1, 1}} {
		_, err := report.New(counts, a)
		assert.ErrorIs(t, err, report.ErrAssignment, "assignment %v", a)
	}
}

func TestEncode_StructuredFormats(t *testing.T) {
	res, err := report.New([][]uint64{{7, 1}, {2, 9}}, []int{0, 1})
	require.NoError(t, err)

	for _, f := range []report.Format{report.FormatJSON, report.FormatYAML, report.FormatCBOR} {
		t.Run(string(f), func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, report.Encode(&out, res, f, "Crates"))

			got, label, err := report.Decode(out.Bytes(), f)
			require.NoError(t, err)
			assert.Equal(t, "Crates", label)
			assert.Equal(t, res.Assignment, got.Assignment)
			assert.Equal(t, "3f", got.Boxes.String())
		})
	}
}

func TestEncode_JSONShape(t *testing.T) {
	res, err := report.New([][]uint64{{3, 2}, {3, 2}}, []int{1, 0})
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, report.Encode(&out, res, report.FormatJSON, ""))
	assert.JSONEq(t, `{"assignment":[1,0],"label":"Boxes","boxes":"6"}`, out.String())
}

func TestEncode_CBORDeterministic(t *testing.T) {
	res, err := report.New([][]uint64{{5, 6}, {7, 8}}, []int{1, 0})
	require.NoError(t, err)
	var a, b bytes.Buffer
	require.NoError(t, report.Encode(&a, res, report.FormatCBOR, ""))
	require.NoError(t, report.Encode(&b, res, report.FormatCBOR, ""))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestEncode_UnknownFormat(t *testing.T) {
	res, err := report.New([][]uint64{{1}}, []int{0})
	require.NoError(t, err)
	var out bytes.Buffer
	assert.ErrorIs(t, report.Encode(&out, res, report.Format("xml"), ""), report.ErrFormat)
	assert.Zero(t, out.Len(), "nothing written on failure")

	_, err = report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrFormat)
	f, err := report.ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, report.FormatYAML, f)
}

func TestEncode_BoxesAsHexText(t *testing.T) {
	const big64 = ^uint64(0)
	res, err := report.New([][]uint64{{big64, 1}, {1, big64}}, []int{0, 1})
	require.NoError(t, err)
	want := res.Boxes.String()
	require.Greater(t, len(want), 16, "product spans more than one 64-bit word")

	unmarshal := map[report.Format]func([]byte, any) error{
		report.FormatJSON: json.Unmarshal,
		report.FormatYAML: yaml.Unmarshal,
		report.FormatCBOR: cbor.Unmarshal,
	}
	for f, raw := range unmarshal {
		t.Run(string(f), func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, report.Encode(&out, res, f, ""))

			var fields map[string]any
			require.NoError(t, raw(out.Bytes(), &fields))
			assert.Equal(t, want, fields["boxes"], "boxes is a hexadecimal text string")

			got, _, err := report.Decode(out.Bytes(), f)
			require.NoError(t, err)
			assert.Equal(t, want, got.Boxes.String())
		})
	}
}

func TestDecode_MissingBoxes(t *testing.T) {
	_, _, err := report.Decode([]byte(`{"assignment":[0],"label":"Boxes"}`), report.FormatJSON)
	assert.ErrorIs(t, err, report.ErrAssignment)

	_, _, err = report.Decode([]byte(`{"assignment":[0],"boxes":"xyz"}`), report.FormatJSON)
	assert.Error(t, err)
}
