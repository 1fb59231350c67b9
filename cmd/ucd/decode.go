// Copyright (c) 2022 NTT Communications Corporation
//
// This software is released under the MIT License.
// see https://github.com/nttcom/ucd/blob/main/LICENSE

package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/gopacket"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/nttcom/ucd/pkg/packet/ucd"
)

type CapturedMessage struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

type Capture struct {
	Messages []CapturedMessage `yaml:"messages"`
}

func newDecodeCmd() *cobra.Command {

	decodeCmd := &cobra.Command{
		Use:   "decode [hex...]",
		Short: "Decode UCD payloads given as hex strings or in a capture file",
		RunE: func(cmd *cobra.Command, args []string) error {
			filepath, err := cmd.Flags().GetString("file")
			if err != nil {
				return err
			}
			inputs, err := collectInputs(args, filepath)
			if err != nil {
				return err
			}
			for _, in := range inputs {
				if err := decodeMessage(cmd.OutOrStdout(), in); err != nil {
					return err
				}
			}
			return nil
		},
	}

	decodeCmd.Flags().StringP("file", "f", "", "path to yaml formatted capture file")
	return decodeCmd
}

func collectInputs(args []string, filepath string) ([]CapturedMessage, error) {
	var inputs []CapturedMessage
	if filepath != "" {
		f, err := os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("file \"%s\" can't open", filepath)
		}
		defer f.Close()
		capture, err := readCapture(f)
		if err != nil {
			return nil, fmt.Errorf("file \"%s\" can't decode: %w", filepath, err)
		}
		inputs = append(inputs, capture.Messages...)
	}
	for i, arg := range args {
		inputs = append(inputs, CapturedMessage{Name: fmt.Sprintf("arg%d", i), Hex: arg})
	}
	if len(inputs) == 0 {
		sampleInput := "messages:\n" +
			"    - name: upstream-2\n" +
			"      hex: 03 05 04 01 01 01 2c 02 04 01 c9 c3 80\n\n"
		return nil, errors.New("no input\n" +
			"pass hex strings as arguments or a capture file with \"-f filepath\"\n" +
			"capture file example is below\n\n" +
			sampleInput)
	}
	return inputs, nil
}

func readCapture(r io.Reader) (Capture, error) {
	capture := Capture{}
	err := yaml.NewDecoder(r).Decode(&capture)
	return capture, err
}

// parseHex accepts hex octets separated by spaces or colons, with an optional 0x prefix.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.NewReplacer(" ", "", ":", "", "\n", "", "\t", "").Replace(s)
	return hex.DecodeString(s)
}

func decodeMessage(w io.Writer, in CapturedMessage) error {
	data, err := parseHex(in.Hex)
	if err != nil {
		return fmt.Errorf("%s: invalid hex: %w", in.Name, err)
	}

	var result map[string]any
	if remote {
		result, err = decodeRemote(client, data)
	} else {
		result, err = decodeLocal(data)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", in.Name, err)
	}
	result["name"] = in.Name

	if jsonFmt {
		output, err := json.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", output)
		return nil
	}

	fmt.Fprintf(w, "%s: %v\n", in.Name, result["summary"])
	if tree, ok := result["tree"].(map[string]any); ok {
		printTree(w, tree, 1)
	}
	return nil
}

func decodeLocal(data []byte) (map[string]any, error) {
	pkt := gopacket.NewPacket(data, ucd.LayerTypeUCD, gopacket.Default)
	if errLayer := pkt.ErrorLayer(); errLayer != nil {
		return nil, errLayer.Error()
	}
	layer, ok := pkt.Layer(ucd.LayerTypeUCD).(*ucd.Layer)
	if !ok {
		return nil, errors.New("no UCD layer decoded")
	}

	msg := layer.Message
	diags := make([]any, 0)
	for _, d := range msg.Diagnostics() {
		diags = append(diags, d)
	}
	return map[string]any{
		"summary":     msg.Summary(),
		"tree":        msg.Tree().AsMap(),
		"diagnostics": diags,
	}, nil
}

func printTree(w io.Writer, node map[string]any, depth int) {
	indent := strings.Repeat("    ", depth)
	if value, ok := node["value"]; ok {
		fmt.Fprintf(w, "%s%v: %v\n", indent, node["name"], value)
	} else {
		fmt.Fprintf(w, "%s%v\n", indent, node["name"])
	}
	if diags, ok := node["diagnostics"].([]any); ok {
		for _, d := range diags {
			if m, ok := d.(map[string]any); ok {
				fmt.Fprintf(w, "%s    [Expert Info: %v]\n", indent, m["cause"])
			}
		}
	}
	if children, ok := node["children"].([]any); ok {
		for _, c := range children {
			if m, ok := c.(map[string]any); ok {
				printTree(w, m, depth+1)
			}
		}
	}
}
