// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package ucd

import (
	"encoding/hex"
	"strings"

	"golang.org/x/exp/constraints"
)

// readUint interprets b as a big-endian unsigned integer. Bytes beyond the
// width of T are shifted out.
func readUint[T constraints.Unsigned](b []byte) T {
	var v T
	for _, c := range b {
		v = v<<8 | T(c)
	}
	return v
}

// HexString formats b as colon separated hex octets.
func HexString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(hex.EncodeToString([]byte{c}))
	}
	return sb.String()
}
