// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package ucd

import "fmt"

// Fixed header layout
const (
	UpstreamChannelIDIndex   = 0
	ConfigChangeCountIndex   = 1
	MiniSlotSizeIndex        = 2
	DownstreamChannelIDIndex = 3
	HeaderLength             = 4
)

// TLV header length (type + length)
const TLVHeaderLength = 2

// SymbolRateUnit converts the raw symbol rate byte to ksym/s
const SymbolRateUnit = 160

type TLVType uint8

// UCD channel TLV types
const (
	TLVSymbolRate             TLVType = 0x01
	TLVFrequency              TLVType = 0x02
	TLVPreamblePattern        TLVType = 0x03
	TLVBurstDescriptor        TLVType = 0x04
	TLVBurstDescriptorDOCSIS2 TLVType = 0x05
)

var tlvDescriptions = map[TLVType]string{
	TLVSymbolRate:             "Symbol Rate",
	TLVFrequency:              "Frequency",
	TLVPreamblePattern:        "Preamble Pattern",
	TLVBurstDescriptor:        "Burst Descriptor",
	TLVBurstDescriptorDOCSIS2: "Burst Descriptor DOCSIS 2.0",
}

func (t TLVType) String() string {
	if desc, ok := tlvDescriptions[t]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown TLV (%d)", uint8(t))
}

// BurstVariant reports the burst descriptor encoding carried by t.
func (t TLVType) BurstVariant() (BurstVariant, bool) {
	switch t {
	case TLVBurstDescriptor:
		return BurstVariantLegacy, true
	case TLVBurstDescriptorDOCSIS2:
		return BurstVariantExtended, true
	}
	return 0, false
}

type SubTLVType uint8

// Burst descriptor sub-TLV types
const (
	SubTLVModulation         SubTLVType = 0x01
	SubTLVDiffEncoding       SubTLVType = 0x02
	SubTLVPreambleLength     SubTLVType = 0x03
	SubTLVPreambleValOffset  SubTLVType = 0x04
	SubTLVFEC                SubTLVType = 0x05
	SubTLVFECCodeword        SubTLVType = 0x06
	SubTLVScramblerSeed      SubTLVType = 0x07
	SubTLVMaxBurst           SubTLVType = 0x08
	SubTLVGuardTime          SubTLVType = 0x09
	SubTLVLastCodewordLength SubTLVType = 0x0a
	SubTLVScramblerOnOff     SubTLVType = 0x0b
	SubTLVRSInterleaverDepth SubTLVType = 0x0c
	SubTLVRSInterleaverBlock SubTLVType = 0x0d
	SubTLVPreambleType       SubTLVType = 0x0e
)

var subTLVDescriptions = map[SubTLVType]string{
	SubTLVModulation:         "Modulation Type",
	SubTLVDiffEncoding:       "Differential Encoding",
	SubTLVPreambleLength:     "Preamble Length",
	SubTLVPreambleValOffset:  "Preamble Value Offset",
	SubTLVFEC:                "FEC Error Correction (T)",
	SubTLVFECCodeword:        "FEC Codeword Information Bytes (k)",
	SubTLVScramblerSeed:      "Scrambler Seed",
	SubTLVMaxBurst:           "Maximum Burst Size",
	SubTLVGuardTime:          "Guard Time Size",
	SubTLVLastCodewordLength: "Last Codeword Length",
	SubTLVScramblerOnOff:     "Scrambler On/Off",
	SubTLVRSInterleaverDepth: "R-S Interleaver Depth",
	SubTLVRSInterleaverBlock: "R-S Interleaver Block Size",
	SubTLVPreambleType:       "Preamble Type",
}

func (t SubTLVType) String() string {
	if desc, ok := subTLVDescriptions[t]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown Sub-TLV (%d)", uint8(t))
}

// BurstVariant distinguishes the type 4 and type 5 burst descriptor encodings.
type BurstVariant uint8

const (
	BurstVariantLegacy   BurstVariant = 1
	BurstVariantExtended BurstVariant = 2
)

func (v BurstVariant) String() string {
	switch v {
	case BurstVariantLegacy:
		return "legacy"
	case BurstVariantExtended:
		return "extended"
	}
	return fmt.Sprintf("unknown_variant_%d", uint8(v))
}

// Allows reports whether sub-TLV type t is defined for this variant.
// The legacy encoding stops at Scrambler On/Off; DOCSIS 2.0 adds three more.
func (v BurstVariant) Allows(t SubTLVType) bool {
	switch v {
	case BurstVariantLegacy:
		return t >= SubTLVModulation && t <= SubTLVScramblerOnOff
	case BurstVariantExtended:
		return t >= SubTLVModulation && t <= SubTLVPreambleType
	}
	return false
}

// IUC is an Interval Usage Code.
type IUC uint8

const (
	IUCRequest                   IUC = 1
	IUCReqData                   IUC = 2
	IUCInitialMaintenance        IUC = 3
	IUCStationMaintenance        IUC = 4
	IUCShortDataGrant            IUC = 5
	IUCLongDataGrant             IUC = 6
	IUCNullIE                    IUC = 7
	IUCDataAck                   IUC = 8
	IUCAdvancedPhyShortDataGrant IUC = 9
	IUCAdvancedPhyLongDataGrant  IUC = 10
	IUCAdvancedPhyUGS            IUC = 11
	IUCReserved12                IUC = 12
	IUCReserved13                IUC = 13
	IUCReserved14                IUC = 14
	IUCExpansion                 IUC = 15
)

var iucNames = map[uint32]string{
	uint32(IUCRequest):                   "Request",
	uint32(IUCReqData):                   "REQ/Data",
	uint32(IUCInitialMaintenance):        "Initial Maintenance",
	uint32(IUCStationMaintenance):        "Station Maintenance",
	uint32(IUCShortDataGrant):            "Short Data Grant",
	uint32(IUCLongDataGrant):             "Long Data Grant",
	uint32(IUCNullIE):                    "NULL IE",
	uint32(IUCDataAck):                   "Data Ack",
	uint32(IUCAdvancedPhyShortDataGrant): "Advanced Phy Short Data Grant",
	uint32(IUCAdvancedPhyLongDataGrant):  "Advanced Phy Long Data Grant",
	uint32(IUCAdvancedPhyUGS):            "Advanced Phy UGS",
	uint32(IUCReserved12):                "Reserved",
	uint32(IUCReserved13):                "Reserved",
	uint32(IUCReserved14):                "Reserved",
	uint32(IUCExpansion):                 "Expanded IUC",
}

func (iuc IUC) String() string {
	return lookupName(iucNames, uint32(iuc))
}

// IsReserved reports whether the code is one of the reserved values 12-14.
func (iuc IUC) IsReserved() bool {
	return iuc >= IUCReserved12 && iuc <= IUCReserved14
}

type Modulation uint8

const (
	ModulationQPSK  Modulation = 1
	ModulationQAM16 Modulation = 2
)

var modulationNames = map[uint32]string{
	uint32(ModulationQPSK):  "QPSK",
	uint32(ModulationQAM16): "QAM16",
}

func (m Modulation) String() string {
	return lookupName(modulationNames, uint32(m))
}

type OnOff uint8

const (
	On  OnOff = 1
	Off OnOff = 2
)

var onOffNames = map[uint32]string{
	uint32(On):  "On",
	uint32(Off): "Off",
}

func (o OnOff) String() string {
	return lookupName(onOffNames, uint32(o))
}

type LastCodewordLength uint8

const (
	LastCodewordFixed     LastCodewordLength = 1
	LastCodewordShortened LastCodewordLength = 2
)

var lastCodewordNames = map[uint32]string{
	uint32(LastCodewordFixed):     "Fixed",
	uint32(LastCodewordShortened): "Shortened",
}

func (l LastCodewordLength) String() string {
	return lookupName(lastCodewordNames, uint32(l))
}

// ChannelID is an upstream channel identifier. Zero is the telephony return
// interface; any other value N is logical channel N-1.
type ChannelID uint8

const TelephonyReturn ChannelID = 0

func (c ChannelID) IsTelephonyReturn() bool {
	return c == TelephonyReturn
}

// Logical returns the zero-based upstream channel number. It reports false for
// the telephony return interface.
func (c ChannelID) Logical() (uint8, bool) {
	if c.IsTelephonyReturn() {
		return 0, false
	}
	return uint8(c) - 1, true
}

func (c ChannelID) String() string {
	if n, ok := c.Logical(); ok {
		return fmt.Sprintf("%d (U%d)", uint8(c), n)
	}
	return fmt.Sprintf("%d (Telephony Return)", uint8(c))
}

func lookupName(names map[uint32]string, v uint32) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", v)
}
