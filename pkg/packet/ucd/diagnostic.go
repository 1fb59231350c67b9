// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package ucd

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Diagnostic is a non-fatal finding about the bytes in [Offset, Offset+Length).
type Diagnostic struct {
	Offset   int    `json:"offset"`
	Length   int    `json:"length"`
	Declared uint8  `json:"declared"`
	Cause    string `json:"cause"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s (offset %d, %d bytes)", d.Cause, d.Offset, d.Length)
}

func (d Diagnostic) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("offset", d.Offset)
	enc.AddInt("length", d.Length)
	enc.AddUint8("declared", d.Declared)
	enc.AddString("cause", d.Cause)
	return nil
}

type Diagnostics []Diagnostic

func (ds Diagnostics) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, d := range ds {
		if err := enc.AppendObject(d); err != nil {
			return err
		}
	}
	return nil
}

func wrongLength(offset int, declared uint8) Diagnostic {
	return Diagnostic{
		Offset:   offset,
		Length:   TLVHeaderLength + int(declared),
		Declared: declared,
		Cause:    fmt.Sprintf("Wrong TLV length: %d", declared),
	}
}

func burstTooShort(offset int, declared uint8) Diagnostic {
	return Diagnostic{
		Offset:   offset,
		Length:   TLVHeaderLength + int(declared),
		Declared: declared,
		Cause:    "Burst descriptor has no Interval Usage Code",
	}
}

// overrun reports a sub-TLV that does not fit in the remaining remain bytes of
// its burst descriptor.
func overrun(offset int, declared uint8, remain int) Diagnostic {
	return Diagnostic{
		Offset:   offset,
		Length:   remain,
		Declared: declared,
		Cause:    fmt.Sprintf("Sub-TLV overruns burst descriptor: %d bytes remain", remain),
	}
}
