// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package ucd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Tree(t *testing.T) {
	msg, err := Decode(sampleMessage())
	require.NoError(t, err)

	root := msg.Tree()
	assert.Equal(t, "UCD Message", root.Name)
	assert.Equal(t, "UCD Message:  Channel ID = 3 (U2)", root.Value)
	assert.Equal(t, len(sampleMessage()), root.Length)
	require.Len(t, root.Children, HeaderLength+4)

	upchid := root.Children[0]
	assert.Equal(t, "docsis_ucd.upchid", upchid.Abbrev)
	assert.Equal(t, "3 (U2)", upchid.Value)

	symrate := root.Children[4]
	assert.Equal(t, "Symbol Rate", symrate.Name)
	assert.Equal(t, 4, symrate.Offset)
	assert.Equal(t, 3, symrate.Length)
	require.Len(t, symrate.Children, 3)
	assert.Equal(t, "docsis_ucd.symrate", symrate.Children[2].Abbrev)
	assert.Equal(t, "7040", symrate.Children[2].Value)

	burst := root.Children[7]
	assert.Equal(t, "Burst Descriptor", burst.Name)
	require.Len(t, burst.Children, 5)
	iuc := burst.Children[2]
	assert.Equal(t, "docsis_ucd.iuc", iuc.Abbrev)
	assert.Equal(t, "Initial Maintenance (3)", iuc.Value)
	assert.Equal(t, 21, iuc.Offset)
	mod := burst.Children[3]
	assert.Equal(t, "docsis_ucd.burst.modtype", mod.Abbrev)
	assert.Equal(t, "QAM16 (2)", mod.Value)
	assert.Equal(t, 22, mod.Offset)
	assert.Equal(t, 3, mod.Length)
}

func TestMessage_TreeDiagnosticsAndUnknown(t *testing.T) {
	data := concat(
		header(0x00),
		tlv(uint8(TLVFrequency), 0x01, 0x02),
		tlv(0x09, 0xab),
		burstTLV(TLVBurstDescriptor, IUCRequest, tlv(uint8(SubTLVPreambleType), 0x01)),
	)
	msg, err := Decode(data)
	require.NoError(t, err)

	root := msg.Tree()
	require.Len(t, root.Children, HeaderLength+3)

	freq := root.Children[4]
	require.Len(t, freq.Diagnostics, 1)
	assert.Equal(t, "Wrong TLV length: 2", freq.Diagnostics[0].Cause)
	assert.Len(t, freq.Children, 2, "no value node when the length check fails")

	unknown := root.Children[5]
	assert.Equal(t, "Unknown TLV (9)", unknown.Name)
	require.Len(t, unknown.Children, 3)
	assert.Equal(t, "ab", unknown.Children[2].Value)

	burst := root.Children[6]
	require.Len(t, burst.Children, 4)
	assert.Equal(t, "Preamble Type", burst.Children[3].Name)
	assert.Equal(t, "01", burst.Children[3].Value)
}

func TestNode_AsMap(t *testing.T) {
	msg, err := Decode(concat(header(0x01), tlv(uint8(TLVSymbolRate), 0x2c, 0x00)))
	require.NoError(t, err)

	m := msg.Tree().AsMap()
	assert.Equal(t, "UCD Message", m["name"])
	children, ok := m["children"].([]any)
	require.True(t, ok)
	require.Len(t, children, HeaderLength+1)

	symrate, ok := children[4].(map[string]any)
	require.True(t, ok)
	diags, ok := symrate["diagnostics"].([]any)
	require.True(t, ok)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].(map[string]any)["declared"])

	// The map form must be JSON encodable as is.
	_, err = json.Marshal(m)
	assert.NoError(t, err)
}
