// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package ucd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func concat(parts ...[]byte) []byte {
	var b []byte
	for _, p := range parts {
		b = append(b, p...)
	}
	return b
}

func tlv(typ uint8, value ...byte) []byte {
	return append([]byte{typ, uint8(len(value))}, value...)
}

func header(upchid uint8) []byte {
	return []byte{upchid, 0x05, 0x04, 0x01}
}

func sampleMessage() []byte {
	return concat(
		header(0x03),
		tlv(uint8(TLVSymbolRate), 0x2c),
		tlv(uint8(TLVFrequency), 0x01, 0xc9, 0xc3, 0x80),
		tlv(uint8(TLVPreamblePattern), 0xcc, 0xcc, 0xcc, 0x0d),
		tlv(uint8(TLVBurstDescriptor), concat(
			[]byte{uint8(IUCInitialMaintenance)},
			tlv(uint8(SubTLVModulation), uint8(ModulationQAM16)),
			tlv(uint8(SubTLVDiffEncoding), uint8(On)),
		)...),
	)
}

func TestDecode_Header(t *testing.T) {
	tests := []struct {
		name        string
		upchid      uint8
		telephony   bool
		summary     string
		channelText string
	}{
		{
			name:        "Telephony return interface",
			upchid:      0x00,
			telephony:   true,
			summary:     "UCD Message:  Channel ID = 0 (Telephony Return)",
			channelText: "0 (Telephony Return)",
		},
		{
			name:        "Upstream channel 3 is U2",
			upchid:      0x03,
			telephony:   false,
			summary:     "UCD Message:  Channel ID = 3 (U2)",
			channelText: "3 (U2)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode(header(tt.upchid))
			require.NoError(t, err)

			assert.Equal(t, tt.telephony, msg.UpstreamChannelID.IsTelephonyReturn())
			assert.Equal(t, tt.summary, msg.Summary())
			assert.Equal(t, tt.channelText, msg.UpstreamChannelID.String())
			assert.Equal(t, uint8(0x05), msg.ConfigChangeCount)
			assert.Equal(t, uint8(0x04), msg.MiniSlotSize)
			assert.Equal(t, uint8(0x01), msg.DownstreamChannelID)
			assert.Empty(t, msg.Records)
		})
	}
}

func TestDecode_SampleMessage(t *testing.T) {
	data := sampleMessage()
	msg, err := Decode(data)
	require.NoError(t, err)

	assert.Empty(t, msg.Diagnostics())
	require.Len(t, msg.Records, 4)

	symrate, ok := msg.SymbolRate()
	require.True(t, ok)
	assert.Equal(t, uint32(7040), symrate)

	freq, ok := msg.Frequency()
	require.True(t, ok)
	assert.Equal(t, uint32(30000000), freq)

	preamble, ok := msg.PreamblePattern()
	require.True(t, ok)
	assert.Equal(t, []byte{0xcc, 0xcc, 0xcc, 0x0d}, preamble)

	bds := msg.BurstDescriptors()
	require.Len(t, bds, 1)
	bd := bds[0]
	assert.Equal(t, BurstVariantLegacy, bd.Variant)
	assert.Equal(t, "Initial Maintenance", bd.IUC.String())

	mod, ok := bd.Lookup(SubTLVModulation)
	require.True(t, ok)
	assert.Equal(t, "QAM16", mod.Value.Label)
	diffenc, ok := bd.DiffEncoding()
	require.True(t, ok)
	assert.Equal(t, "On", diffenc.String())

	burst := msg.Records[3]
	assert.Equal(t, 19, burst.Offset)
	assert.Equal(t, uint8(7), burst.Length)
	last := bd.SubRecords[len(bd.SubRecords)-1]
	assert.Equal(t, burst.End(), last.End(), "inner cursor must consume the whole burst descriptor")
}

func TestDecode_CursorInvariant(t *testing.T) {
	data := concat(
		sampleMessage(),
		tlv(0x7f, 0x01, 0x02, 0x03),
		tlv(uint8(TLVFrequency), 0x00, 0x01),
		tlv(uint8(TLVSymbolRate), 0x10),
	)
	msg, err := Decode(data)
	require.NoError(t, err)

	pos := HeaderLength
	for _, r := range msg.Records {
		assert.Equal(t, pos, r.Offset, "record %s starts where the previous one ended", r.Type)
		assert.Equal(t, r.Offset+TLVHeaderLength+int(r.Length), r.End())
		pos = r.End()
	}
	assert.Equal(t, len(data), pos)
}

func TestDecode_LengthCheck(t *testing.T) {
	tests := []struct {
		name  string
		typ   TLVType
		value []byte
		diags int
	}{
		{name: "Symbol rate with expected length", typ: TLVSymbolRate, value: []byte{0x2c}, diags: 0},
		{name: "Symbol rate one byte short", typ: TLVSymbolRate, value: []byte{}, diags: 1},
		{name: "Symbol rate one byte long", typ: TLVSymbolRate, value: []byte{0x2c, 0x00}, diags: 1},
		{name: "Frequency with expected length", typ: TLVFrequency, value: []byte{0x01, 0xc9, 0xc3, 0x80}, diags: 0},
		{name: "Frequency one byte short", typ: TLVFrequency, value: []byte{0x01, 0xc9, 0xc3}, diags: 1},
		{name: "Frequency one byte long", typ: TLVFrequency, value: []byte{0x01, 0xc9, 0xc3, 0x80, 0x00}, diags: 1},
		{name: "Preamble pattern has no fixed length", typ: TLVPreamblePattern, value: []byte{0xcc}, diags: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A trailing symbol rate TLV checks that the cursor kept its place.
			data := concat(header(0x01), tlv(uint8(tt.typ), tt.value...), tlv(uint8(TLVSymbolRate), 0x20))
			msg, err := Decode(data)
			require.NoError(t, err)
			require.Len(t, msg.Records, 2)

			rec := msg.Records[0]
			assert.Len(t, rec.Diagnostics, tt.diags)
			assert.Len(t, msg.Diagnostics(), tt.diags)
			if tt.diags == 0 {
				assert.NotNil(t, rec.Value)
			} else {
				assert.Nil(t, rec.Value)
				assert.Equal(t, uint8(len(tt.value)), rec.Diagnostics[0].Declared)
				assert.Equal(t, rec.Offset, rec.Diagnostics[0].Offset)
			}

			next := msg.Records[1]
			assert.Equal(t, TLVSymbolRate, next.Type)
			assert.Equal(t, rec.End(), next.Offset)
			assert.Empty(t, next.Diagnostics)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{name: "Empty buffer", input: []byte{}},
		{name: "Header too short", input: []byte{0x01, 0x02, 0x03}},
		{name: "TLV header cut after type", input: concat(header(0x01), []byte{uint8(TLVSymbolRate)})},
		{name: "Value extends past buffer end", input: concat(header(0x01), []byte{uint8(TLVFrequency), 0x04, 0x01, 0xc9})},
		{name: "Burst descriptor extends past buffer end", input: concat(header(0x01), []byte{uint8(TLVBurstDescriptor), 0x09, 0x03, 0x01, 0x01, 0x02})},
		{name: "Unknown TLV extends past buffer end", input: concat(header(0x01), []byte{0x42, 0x02, 0x00})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode(tt.input)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, msg)
		})
	}
}

func TestDecode_UnrecognizedType(t *testing.T) {
	data := concat(header(0x02), tlv(0x06, 0xde, 0xad), tlv(uint8(TLVSymbolRate), 0x2c))
	msg, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, msg.Records, 2)

	unknown := msg.Records[0]
	assert.False(t, unknown.Recognized())
	assert.Nil(t, unknown.Value)
	assert.Empty(t, unknown.Diagnostics)
	assert.Equal(t, []byte{0xde, 0xad}, unknown.Raw)
	assert.Equal(t, "Unknown TLV (6)", unknown.Type.String())

	symrate, ok := msg.SymbolRate()
	require.True(t, ok)
	assert.Equal(t, uint32(7040), symrate)
}

func TestDecode_DoesNotAliasInput(t *testing.T) {
	data := sampleMessage()
	msg, err := Decode(data)
	require.NoError(t, err)

	for i := range data {
		data[i] = 0xff
	}
	preamble, ok := msg.PreamblePattern()
	require.True(t, ok)
	assert.Equal(t, []byte{0xcc, 0xcc, 0xcc, 0x0d}, preamble)
}

func TestDecoder_WithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := NewDecoder(WithLogger(zap.New(core)))

	data := concat(header(0x01), tlv(uint8(TLVSymbolRate), 0x2c, 0x00))
	_, err := d.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("UCD TLV diagnostic").Len())
	assert.Equal(t, 1, logs.FilterMessage("decoded UCD message").Len())

	_, err = d.Decode(data[:HeaderLength+2])
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("drop malformed UCD message").Len())
}

func TestMessage_MarshalLogObject(t *testing.T) {
	msg, err := Decode(concat(header(0x00), tlv(uint8(TLVSymbolRate), 0x2c, 0x00)))
	require.NoError(t, err)

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, msg.MarshalLogObject(enc))
	assert.Equal(t, "0 (Telephony Return)", enc.Fields["upstreamChannelID"])
	assert.Equal(t, 1, enc.Fields["records"])
	diags, ok := enc.Fields["diagnostics"].([]any)
	require.True(t, ok)
	assert.Len(t, diags, 1)
}
