// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package ucd

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap/zapcore"
)

// FieldKind selects how a field's value bytes are converted.
type FieldKind uint8

const (
	FieldUint  FieldKind = 1 // big-endian unsigned integer of the expected length
	FieldEnum  FieldKind = 2 // unsigned integer with named values
	FieldBytes FieldKind = 3 // opaque byte string
	FieldBurst FieldKind = 4 // IUC followed by burst sub-TLVs
)

func (k FieldKind) String() string {
	switch k {
	case FieldUint:
		return "uint"
	case FieldEnum:
		return "enum"
	case FieldBytes:
		return "bytes"
	case FieldBurst:
		return "burst"
	}
	return fmt.Sprintf("unknown_kind_%d", uint8(k))
}

// Base is the display base of an integer field.
type Base uint8

const (
	BaseNone Base = iota
	BaseDec
	BaseHex
)

// Field contexts
const (
	ContextHeader  = "header"
	ContextChannel = "channel"
	ContextBurst   = "burst"
)

// FieldDescriptor describes one decodable field. Length is the exact number of
// value bytes the field must carry; zero means the length is not fixed.
type FieldDescriptor struct {
	Context     string
	Code        uint8
	Name        string
	Abbrev      string
	Description string
	Kind        FieldKind
	Length      uint8
	Base        Base
	Scale       uint32
	Names       map[uint32]string
}

func (f *FieldDescriptor) Variable() bool {
	return f.Length == 0
}

// CheckLength reports whether a declared value length satisfies the field.
func (f *FieldDescriptor) CheckLength(n uint8) bool {
	return f.Variable() || n == f.Length
}

func (f *FieldDescriptor) decodeScalar(value []byte) *Scalar {
	raw := readUint[uint32](value)
	s := &Scalar{
		Raw:   raw,
		Value: raw,
		Base:  f.Base,
		Width: uint8(len(value)),
	}
	if f.Scale > 0 {
		s.Value = raw * f.Scale
	}
	if f.Kind == FieldEnum {
		s.Label = lookupName(f.Names, raw)
	}
	return s
}

// decode converts the value bytes of a scalar or byte-string field.
// Burst descriptors are walked separately.
func (f *FieldDescriptor) decode(value []byte) Value {
	switch f.Kind {
	case FieldUint, FieldEnum:
		return f.decodeScalar(value)
	case FieldBytes:
		return ByteString(value)
	}
	return nil
}

func (f *FieldDescriptor) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("context", f.Context)
	enc.AddUint8("code", f.Code)
	enc.AddString("name", f.Name)
	enc.AddString("abbrev", f.Abbrev)
	enc.AddString("kind", f.Kind.String())
	enc.AddUint8("length", f.Length)
	return nil
}

// Dictionary is the immutable table of every field a UCD message can carry.
// A Dictionary must not be modified after NewDictionary returns it.
type Dictionary struct {
	header  [HeaderLength]*FieldDescriptor
	tlvType *FieldDescriptor
	tlvLen  *FieldDescriptor
	iuc     *FieldDescriptor
	channel map[TLVType]*FieldDescriptor
	burst   map[SubTLVType]*FieldDescriptor
}

// DefaultDictionary is shared by Decode and by decoders built without WithDictionary.
var DefaultDictionary = NewDictionary()

func NewDictionary() *Dictionary {
	d := &Dictionary{
		header: [HeaderLength]*FieldDescriptor{
			{Context: ContextHeader, Code: UpstreamChannelIDIndex, Name: "Upstream Channel ID", Abbrev: "docsis_ucd.upchid", Kind: FieldUint, Length: 1, Base: BaseDec},
			{Context: ContextHeader, Code: ConfigChangeCountIndex, Name: "Config Change Count", Abbrev: "docsis_ucd.confcngcnt", Description: "Configuration Change Count", Kind: FieldUint, Length: 1, Base: BaseDec},
			{Context: ContextHeader, Code: MiniSlotSizeIndex, Name: "Mini Slot Size (6.25us TimeTicks)", Abbrev: "docsis_ucd.mslotsize", Kind: FieldUint, Length: 1, Base: BaseDec},
			{Context: ContextHeader, Code: DownstreamChannelIDIndex, Name: "Downstream Channel ID", Abbrev: "docsis_ucd.downchid", Kind: FieldUint, Length: 1, Base: BaseDec},
		},
		tlvType: &FieldDescriptor{Context: ContextChannel, Name: "TLV Type", Abbrev: "docsis_ucd.type", Description: "Channel TLV type", Kind: FieldUint, Length: 1, Base: BaseDec},
		tlvLen:  &FieldDescriptor{Context: ContextChannel, Name: "TLV Length", Abbrev: "docsis_ucd.length", Description: "Channel TLV length", Kind: FieldUint, Length: 1, Base: BaseDec},
		iuc:     &FieldDescriptor{Context: ContextBurst, Name: "Interval Usage Code", Abbrev: "docsis_ucd.iuc", Kind: FieldEnum, Length: 1, Base: BaseDec, Names: iucNames},
		channel: map[TLVType]*FieldDescriptor{
			TLVSymbolRate:             {Name: "Symbol Rate (ksym/sec)", Abbrev: "docsis_ucd.symrate", Description: "Symbol Rate", Kind: FieldUint, Length: 1, Base: BaseDec, Scale: SymbolRateUnit},
			TLVFrequency:              {Name: "Frequency (Hz)", Abbrev: "docsis_ucd.freq", Description: "Upstream Center Frequency", Kind: FieldUint, Length: 4, Base: BaseDec},
			TLVPreamblePattern:        {Name: "Preamble Pattern", Abbrev: "docsis_ucd.preamble", Description: "Preamble Superstring", Kind: FieldBytes, Base: BaseNone},
			TLVBurstDescriptor:        {Name: "Burst Descriptor", Abbrev: "docsis_ucd.burst", Kind: FieldBurst},
			TLVBurstDescriptorDOCSIS2: {Name: "Burst Descriptor DOCSIS 2.0", Abbrev: "docsis_ucd.burst5", Kind: FieldBurst},
		},
		burst: map[SubTLVType]*FieldDescriptor{
			SubTLVModulation:         {Name: "1 Modulation Type", Abbrev: "docsis_ucd.burst.modtype", Description: "Modulation Type", Kind: FieldEnum, Length: 1, Base: BaseDec, Names: modulationNames},
			SubTLVDiffEncoding:       {Name: "2 Differential Encoding", Abbrev: "docsis_ucd.burst.diffenc", Description: "Differential Encoding", Kind: FieldEnum, Length: 1, Base: BaseDec, Names: onOffNames},
			SubTLVPreambleLength:     {Name: "3 Preamble Length (Bits)", Abbrev: "docsis_ucd.burst.preamble_len", Description: "Preamble Length (Bits)", Kind: FieldUint, Length: 2, Base: BaseDec},
			SubTLVPreambleValOffset:  {Name: "4 Preamble Offset (Bits)", Abbrev: "docsis_ucd.burst.preamble_off", Description: "Preamble Offset (Bits)", Kind: FieldUint, Length: 2, Base: BaseDec},
			SubTLVFEC:                {Name: "5 FEC (T)", Abbrev: "docsis_ucd.burst.fec", Description: "FEC (T) Codeword Parity Bits = 2^T", Kind: FieldUint, Length: 1, Base: BaseDec},
			SubTLVFECCodeword:        {Name: "6 FEC Codeword Info bytes (k)", Abbrev: "docsis_ucd.burst.fec_codeword", Description: "FEC Codeword Info Bytes (k)", Kind: FieldUint, Length: 1, Base: BaseDec},
			SubTLVScramblerSeed:      {Name: "7 Scrambler Seed", Abbrev: "docsis_ucd.burst.scrambler_seed", Description: "Scrambler Seed", Kind: FieldUint, Length: 2, Base: BaseHex},
			SubTLVMaxBurst:           {Name: "8 Max Burst Size (Minislots)", Abbrev: "docsis_ucd.burst.maxburst", Description: "Max Burst Size (Minislots)", Kind: FieldUint, Length: 1, Base: BaseDec},
			SubTLVGuardTime:          {Name: "9 Guard Time Size (Symbol Times)", Abbrev: "docsis_ucd.burst.guardtime", Description: "Guard Time Size", Kind: FieldUint, Length: 1, Base: BaseDec},
			SubTLVLastCodewordLength: {Name: "10 Last Codeword Length", Abbrev: "docsis_ucd.burst.last_cw_len", Description: "Last Codeword Length", Kind: FieldEnum, Length: 1, Base: BaseDec, Names: lastCodewordNames},
			SubTLVScramblerOnOff:     {Name: "11 Scrambler On/Off", Abbrev: "docsis_ucd.burst.scrambleronoff", Description: "Scrambler On/Off", Kind: FieldEnum, Length: 1, Base: BaseDec, Names: onOffNames},
			SubTLVRSInterleaverDepth: {Name: "12 RS Interleaver Depth", Abbrev: "docsis_ucd.burst.rsintdepth", Description: "R-S Interleaver Depth", Kind: FieldUint, Length: 1, Base: BaseDec},
			SubTLVRSInterleaverBlock: {Name: "13 RS Interleaver Block Size", Abbrev: "docsis_ucd.burst.rsintblock", Description: "R-S Interleaver Block", Kind: FieldUint, Length: 2, Base: BaseDec},
			SubTLVPreambleType:       {Name: "14 Preamble Type", Abbrev: "docsis_ucd.burst.preambletype", Description: "Preamble Type", Kind: FieldUint, Length: 1, Base: BaseDec},
		},
	}
	for t, f := range d.channel {
		f.Context = ContextChannel
		f.Code = uint8(t)
	}
	for t, f := range d.burst {
		f.Context = ContextBurst
		f.Code = uint8(t)
	}
	return d
}

// Header returns the descriptor of the fixed header field at index i.
func (d *Dictionary) Header(i int) *FieldDescriptor {
	return d.header[i]
}

func (d *Dictionary) TLVType() *FieldDescriptor {
	return d.tlvType
}

func (d *Dictionary) TLVLength() *FieldDescriptor {
	return d.tlvLen
}

func (d *Dictionary) IUC() *FieldDescriptor {
	return d.iuc
}

func (d *Dictionary) Channel(t TLVType) (*FieldDescriptor, bool) {
	f, ok := d.channel[t]
	return f, ok
}

// Burst returns the descriptor of sub-TLV type t if variant v defines it.
func (d *Dictionary) Burst(v BurstVariant, t SubTLVType) (*FieldDescriptor, bool) {
	if !v.Allows(t) {
		return nil, false
	}
	f, ok := d.burst[t]
	return f, ok
}

// Fields lists every descriptor: header fields, channel TLVs, then burst
// sub-TLVs, each group ordered by code.
func (d *Dictionary) Fields() []*FieldDescriptor {
	fields := make([]*FieldDescriptor, 0, HeaderLength+3+len(d.channel)+len(d.burst))
	fields = append(fields, d.header[:]...)
	fields = append(fields, d.tlvType, d.tlvLen)
	for _, t := range slices.Sorted(maps.Keys(d.channel)) {
		fields = append(fields, d.channel[t])
	}
	fields = append(fields, d.iuc)
	for _, t := range slices.Sorted(maps.Keys(d.burst)) {
		fields = append(fields, d.burst[t])
	}
	return fields
}
