package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nttcom/ucd/pkg/packet/ucd"
)

func newFieldsCmd() *cobra.Command {

	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "List the fields the decoder knows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showFields(cmd.OutOrStdout(), jsonFmt)
		},
	}
	return fieldsCmd
}

func localFields() []any {
	fields := ucd.DefaultDictionary.Fields()
	ret := make([]any, 0, len(fields))
	for _, f := range fields {
		ret = append(ret, map[string]any{
			"context":     f.Context,
			"code":        int(f.Code),
			"name":        f.Name,
			"abbrev":      f.Abbrev,
			"description": f.Description,
			"kind":        f.Kind.String(),
			"length":      int(f.Length),
		})
	}
	return ret
}

func showFields(w io.Writer, jsonFlag bool) error {
	var fields []any
	if remote {
		var err error
		if fields, err = listFieldsRemote(client); err != nil {
			return err
		}
	} else {
		fields = localFields()
	}

	if jsonFlag {
		// output json format
		output_json, err := json.Marshal(map[string]any{"fields": fields})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%+v\n", string(output_json))
		return nil
	}

	//output user-friendly format
	fmt.Fprintf(w, "%-8s %-5s %-36s %-6s %-6s %s\n", "Context", "Code", "Abbrev", "Kind", "Length", "Name")
	for _, f := range fields {
		m, ok := f.(map[string]any)
		if !ok {
			continue
		}
		length := fmt.Sprintf("%v", m["length"])
		if length == "0" {
			length = "var"
		}
		fmt.Fprintf(w, "%-8v %-5v %-36v %-6v %-6s %v\n", m["context"], m["code"], m["abbrev"], m["kind"], length, m["name"])
	}
	return nil
}
