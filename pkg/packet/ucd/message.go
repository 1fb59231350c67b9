// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package ucd

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Value is a decoded record payload: *Scalar, ByteString or *BurstDescriptor.
type Value interface {
	fmt.Stringer
	zapcore.ObjectMarshaler
}

// Scalar is a decoded integer field. Value differs from Raw only for fields
// with a unit conversion (symbol rate).
type Scalar struct {
	Raw   uint32
	Value uint32
	Label string
	Base  Base
	Width uint8
}

func (s *Scalar) String() string {
	switch {
	case s.Label != "":
		return fmt.Sprintf("%s (%d)", s.Label, s.Raw)
	case s.Base == BaseHex:
		return fmt.Sprintf("0x%0*x", int(s.Width)*2, s.Value)
	}
	return fmt.Sprintf("%d", s.Value)
}

func (s *Scalar) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint32("raw", s.Raw)
	enc.AddUint32("value", s.Value)
	if s.Label != "" {
		enc.AddString("label", s.Label)
	}
	return nil
}

type ByteString []byte

func (b ByteString) String() string {
	return HexString(b)
}

func (b ByteString) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("hex", HexString(b))
	return nil
}

// Message is a decoded Upstream Channel Descriptor.
type Message struct {
	UpstreamChannelID   ChannelID
	ConfigChangeCount   uint8
	MiniSlotSize        uint8
	DownstreamChannelID uint8
	Records             []*TopLevelRecord
	Length              int
	dict                *Dictionary
}

// Summary is the one-line description of the message.
func (m *Message) Summary() string {
	return "UCD Message:  Channel ID = " + m.UpstreamChannelID.String()
}

// Diagnostics returns every finding in the message in byte order.
func (m *Message) Diagnostics() Diagnostics {
	var diags Diagnostics
	for _, r := range m.Records {
		diags = append(diags, r.Diagnostics...)
	}
	return diags
}

// Record returns the first record of type t.
func (m *Message) Record(t TLVType) (*TopLevelRecord, bool) {
	for _, r := range m.Records {
		if r.Type == t {
			return r, true
		}
	}
	return nil, false
}

func (m *Message) scalar(t TLVType) (uint32, bool) {
	r, ok := m.Record(t)
	if !ok {
		return 0, false
	}
	s, ok := r.Value.(*Scalar)
	if !ok {
		return 0, false
	}
	return s.Value, true
}

// SymbolRate returns the symbol rate in ksym/s.
func (m *Message) SymbolRate() (uint32, bool) {
	return m.scalar(TLVSymbolRate)
}

// Frequency returns the upstream center frequency in Hz.
func (m *Message) Frequency() (uint32, bool) {
	return m.scalar(TLVFrequency)
}

func (m *Message) PreamblePattern() ([]byte, bool) {
	r, ok := m.Record(TLVPreamblePattern)
	if !ok {
		return nil, false
	}
	b, ok := r.Value.(ByteString)
	return b, ok
}

// BurstDescriptors returns the decoded burst descriptors of both variants in
// message order.
func (m *Message) BurstDescriptors() []*BurstDescriptor {
	var bds []*BurstDescriptor
	for _, r := range m.Records {
		if bd, ok := r.Value.(*BurstDescriptor); ok {
			bds = append(bds, bd)
		}
	}
	return bds
}

func (m *Message) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("upstreamChannelID", m.UpstreamChannelID.String())
	enc.AddUint8("configChangeCount", m.ConfigChangeCount)
	enc.AddUint8("miniSlotSize", m.MiniSlotSize)
	enc.AddUint8("downstreamChannelID", m.DownstreamChannelID)
	enc.AddInt("records", len(m.Records))
	return enc.AddArray("diagnostics", m.Diagnostics())
}

// TopLevelRecord is one channel TLV. The record spans
// [Offset, Offset+TLVHeaderLength+Length) whether or not its value decoded.
type TopLevelRecord struct {
	Type        TLVType
	Length      uint8
	Offset      int
	Field       *FieldDescriptor // nil for unrecognized types
	Value       Value            // nil when unrecognized or the length check failed
	Raw         []byte
	Diagnostics Diagnostics
}

func (r *TopLevelRecord) Recognized() bool {
	return r.Field != nil
}

func (r *TopLevelRecord) ValueOffset() int {
	return r.Offset + TLVHeaderLength
}

// End is the offset of the byte following the record.
func (r *TopLevelRecord) End() int {
	return r.ValueOffset() + int(r.Length)
}

func (r *TopLevelRecord) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", r.Type.String())
	enc.AddUint8("length", r.Length)
	enc.AddInt("offset", r.Offset)
	if r.Value != nil {
		if err := enc.AddObject("value", r.Value); err != nil {
			return err
		}
	}
	if len(r.Diagnostics) > 0 {
		return enc.AddArray("diagnostics", r.Diagnostics)
	}
	return nil
}

// BurstDescriptor is the decoded value of a type 4 or type 5 channel TLV.
type BurstDescriptor struct {
	Variant    BurstVariant
	IUC        IUC
	Offset     int // offset of the IUC byte
	SubRecords []*BurstSubRecord
}

func (bd *BurstDescriptor) String() string {
	return fmt.Sprintf("IUC %s, %d attributes", bd.IUC, len(bd.SubRecords))
}

// Lookup returns the first recognized sub-record of type t.
func (bd *BurstDescriptor) Lookup(t SubTLVType) (*BurstSubRecord, bool) {
	for _, sr := range bd.SubRecords {
		if sr.Type == t && sr.Recognized() {
			return sr, true
		}
	}
	return nil, false
}

// Uint returns the decoded integer of sub-TLV t.
func (bd *BurstDescriptor) Uint(t SubTLVType) (uint32, bool) {
	sr, ok := bd.Lookup(t)
	if !ok || sr.Value == nil {
		return 0, false
	}
	return sr.Value.Value, true
}

func (bd *BurstDescriptor) Modulation() (Modulation, bool) {
	v, ok := bd.Uint(SubTLVModulation)
	return Modulation(v), ok
}

func (bd *BurstDescriptor) DiffEncoding() (OnOff, bool) {
	v, ok := bd.Uint(SubTLVDiffEncoding)
	return OnOff(v), ok
}

func (bd *BurstDescriptor) Scrambler() (OnOff, bool) {
	v, ok := bd.Uint(SubTLVScramblerOnOff)
	return OnOff(v), ok
}

func (bd *BurstDescriptor) LastCodewordLength() (LastCodewordLength, bool) {
	v, ok := bd.Uint(SubTLVLastCodewordLength)
	return LastCodewordLength(v), ok
}

func (bd *BurstDescriptor) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("variant", bd.Variant.String())
	enc.AddString("iuc", bd.IUC.String())
	return enc.AddArray("attributes", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
		for _, sr := range bd.SubRecords {
			if err := ae.AppendObject(sr); err != nil {
				return err
			}
		}
		return nil
	}))
}

// BurstSubRecord is one PHY burst attribute. Sub-TLVs the variant does not
// define are kept with a nil Field and their raw bytes.
type BurstSubRecord struct {
	Type   SubTLVType
	Length uint8
	Offset int
	Field  *FieldDescriptor
	Value  *Scalar
	Raw    []byte
}

func (sr *BurstSubRecord) Recognized() bool {
	return sr.Field != nil
}

func (sr *BurstSubRecord) End() int {
	return sr.Offset + TLVHeaderLength + int(sr.Length)
}

func (sr *BurstSubRecord) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", sr.Type.String())
	enc.AddUint8("length", sr.Length)
	if sr.Value != nil {
		return enc.AddObject("value", sr.Value)
	}
	enc.AddString("raw", HexString(sr.Raw))
	return nil
}
