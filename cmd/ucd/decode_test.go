package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHex = "03 05 04 01 01 01 2c 02 04 01 c9 c3 80 04 07 03 01 01 02 02 01 01"

func TestParseHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
		err      bool
	}{
		{name: "Space separated", input: "03 05 04", expected: []byte{0x03, 0x05, 0x04}},
		{name: "Colon separated with prefix", input: "0x03:05:04", expected: []byte{0x03, 0x05, 0x04}},
		{name: "Contiguous", input: "030504\n", expected: []byte{0x03, 0x05, 0x04}},
		{name: "Odd digit count", input: "030", err: true},
		{name: "Not hex", input: "zz", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := parseHex(tt.input)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestReadCapture(t *testing.T) {
	capture, err := readCapture(strings.NewReader(`
messages:
  - name: upstream-2
    hex: 03 05 04 01
  - name: telephony
    hex: "00 01 02 03"
`))
	require.NoError(t, err)
	require.Len(t, capture.Messages, 2)
	assert.Equal(t, "upstream-2", capture.Messages[0].Name)
	assert.Equal(t, "00 01 02 03", capture.Messages[1].Hex)
}

func TestCollectInputs_Empty(t *testing.T) {
	_, err := collectInputs(nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capture file example")
}

func TestDecodeMessage_Text(t *testing.T) {
	jsonFmt, remote = false, false
	var out bytes.Buffer
	require.NoError(t, decodeMessage(&out, CapturedMessage{Name: "sample", Hex: sampleHex}))

	text := out.String()
	assert.Contains(t, text, "sample: UCD Message:  Channel ID = 3 (U2)")
	assert.Contains(t, text, "Symbol Rate (ksym/sec): 7040")
	assert.Contains(t, text, "Interval Usage Code: Initial Maintenance (3)")
	assert.Contains(t, text, "1 Modulation Type: QAM16 (2)")
}

func TestDecodeMessage_JSON(t *testing.T) {
	jsonFmt, remote = true, false
	defer func() { jsonFmt = false }()

	var out bytes.Buffer
	require.NoError(t, decodeMessage(&out, CapturedMessage{Name: "bad-length", Hex: "00 01 02 03 01 02 2c 00"}))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "bad-length", result["name"])
	assert.Equal(t, "UCD Message:  Channel ID = 0 (Telephony Return)", result["summary"])
	diags, ok := result["diagnostics"].([]any)
	require.True(t, ok)
	require.Len(t, diags, 1)
	assert.Equal(t, "Wrong TLV length: 2", diags[0].(map[string]any)["cause"])
}

func TestDecodeMessage_Malformed(t *testing.T) {
	jsonFmt, remote = false, false
	var out bytes.Buffer
	err := decodeMessage(&out, CapturedMessage{Name: "cut", Hex: "03 05 04 01 02 04 01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cut: ")
	assert.Empty(t, out.String())
}

func TestShowFields(t *testing.T) {
	remote = false
	var out bytes.Buffer
	require.NoError(t, showFields(&out, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 27)
	assert.Contains(t, lines[7], "docsis_ucd.symrate")
	assert.Contains(t, lines[9], "var")
}
