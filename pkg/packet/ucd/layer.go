// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package ucd

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// DOCSIS MAC management message type carrying a UCD
const ManagementTypeUCD = 0x02

// LayerTypeUCD type registration
var LayerTypeUCD = gopacket.RegisterLayerType(1902, gopacket.LayerTypeMetadata{Name: "DOCSIS UCD", Decoder: gopacket.DecodeFunc(decodeUCDLayer)})

// Layer exposes a decoded UCD as a gopacket layer.
type Layer struct {
	layers.BaseLayer
	Message *Message
}

// LayerType returns LayerTypeUCD
func (l *Layer) LayerType() gopacket.LayerType {
	return LayerTypeUCD
}

// DecodeFromBytes decodes the given bytes into this layer.
func (l *Layer) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	msg, err := Decode(data)
	if err != nil {
		df.SetTruncated()
		return err
	}
	l.Message = msg
	l.Contents = data
	l.Payload = nil
	return nil
}

// CanDecode returns the set of layer types that this DecodingLayer can decode.
func (l *Layer) CanDecode() gopacket.LayerClass {
	return LayerTypeUCD
}

// NextLayerType returns the layer type contained by this DecodingLayer.
func (l *Layer) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypeZero
}

func decodeUCDLayer(data []byte, p gopacket.PacketBuilder) error {
	l := &Layer{}
	if err := l.DecodeFromBytes(data, p); err != nil {
		return err
	}
	p.AddLayer(l)
	return nil
}
