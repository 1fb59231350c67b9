// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package ucd

import (
	"fmt"
	"strconv"
)

// Node is one entry of the display tree built from a decoded Message. Offset
// and Length locate the node in the original buffer.
type Node struct {
	Name        string      `json:"name"`
	Abbrev      string      `json:"abbrev,omitempty"`
	Offset      int         `json:"offset"`
	Length      int         `json:"length"`
	Value       string      `json:"value,omitempty"`
	Children    []*Node     `json:"children,omitempty"`
	Diagnostics Diagnostics `json:"diagnostics,omitempty"`
}

func (n *Node) add(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// AsMap converts the tree to nested maps and slices of basic types.
func (n *Node) AsMap() map[string]any {
	m := map[string]any{
		"name":   n.Name,
		"offset": n.Offset,
		"length": n.Length,
	}
	if n.Abbrev != "" {
		m["abbrev"] = n.Abbrev
	}
	if n.Value != "" {
		m["value"] = n.Value
	}
	if len(n.Children) > 0 {
		children := make([]any, 0, len(n.Children))
		for _, c := range n.Children {
			children = append(children, c.AsMap())
		}
		m["children"] = children
	}
	if len(n.Diagnostics) > 0 {
		diags := make([]any, 0, len(n.Diagnostics))
		for _, d := range n.Diagnostics {
			diags = append(diags, map[string]any{
				"offset":   d.Offset,
				"length":   d.Length,
				"declared": int(d.Declared),
				"cause":    d.Cause,
			})
		}
		m["diagnostics"] = diags
	}
	return m
}

func fieldNode(f *FieldDescriptor, offset, length int, value string) *Node {
	return &Node{
		Name:   f.Name,
		Abbrev: f.Abbrev,
		Offset: offset,
		Length: length,
		Value:  value,
	}
}

// Tree builds the display tree of m.
func (m *Message) Tree() *Node {
	dict := m.dict
	if dict == nil {
		dict = DefaultDictionary
	}

	root := &Node{
		Name:   "UCD Message",
		Offset: 0,
		Length: m.Length,
		Value:  m.Summary(),
	}
	root.add(fieldNode(dict.Header(UpstreamChannelIDIndex), UpstreamChannelIDIndex, 1, m.UpstreamChannelID.String()))
	root.add(fieldNode(dict.Header(ConfigChangeCountIndex), ConfigChangeCountIndex, 1, strconv.Itoa(int(m.ConfigChangeCount))))
	root.add(fieldNode(dict.Header(MiniSlotSizeIndex), MiniSlotSizeIndex, 1, strconv.Itoa(int(m.MiniSlotSize))))
	root.add(fieldNode(dict.Header(DownstreamChannelIDIndex), DownstreamChannelIDIndex, 1, strconv.Itoa(int(m.DownstreamChannelID))))

	for _, r := range m.Records {
		root.add(r.node(dict))
	}
	return root
}

func (r *TopLevelRecord) node(dict *Dictionary) *Node {
	n := &Node{
		Name:        r.Type.String(),
		Offset:      r.Offset,
		Length:      TLVHeaderLength + int(r.Length),
		Diagnostics: r.Diagnostics,
	}
	n.add(fieldNode(dict.TLVType(), r.Offset, 1, r.Type.String()))
	n.add(fieldNode(dict.TLVLength(), r.Offset+1, 1, strconv.Itoa(int(r.Length))))

	switch v := r.Value.(type) {
	case nil:
		if !r.Recognized() && len(r.Raw) > 0 {
			n.add(&Node{Name: "Value", Offset: r.ValueOffset(), Length: len(r.Raw), Value: HexString(r.Raw)})
		}
	case *BurstDescriptor:
		v.addNodes(n, dict)
	default:
		n.add(fieldNode(r.Field, r.ValueOffset(), int(r.Length), v.String()))
	}
	return n
}

func (bd *BurstDescriptor) addNodes(parent *Node, dict *Dictionary) {
	iuc := dict.IUC()
	parent.add(fieldNode(iuc, bd.Offset, 1, fmt.Sprintf("%s (%d)", bd.IUC, uint8(bd.IUC))))
	for _, sr := range bd.SubRecords {
		length := TLVHeaderLength + int(sr.Length)
		switch {
		case sr.Value != nil:
			parent.add(fieldNode(sr.Field, sr.Offset, length, sr.Value.String()))
		case sr.Recognized():
			parent.add(fieldNode(sr.Field, sr.Offset, length, ""))
		default:
			parent.add(&Node{Name: sr.Type.String(), Offset: sr.Offset, Length: length, Value: HexString(sr.Raw)})
		}
	}
}
