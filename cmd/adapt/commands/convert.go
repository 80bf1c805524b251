// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/china-tjj/adapt"
)

type result struct {
	Input  string `yaml:"input"`
	Type   string `yaml:"type"`
	Value  string `yaml:"value,omitempty"`
	Absent bool   `yaml:"absent"`
}

func convertCmd(opts *options) *cobra.Command {
	var to, output string
	cmd := &cobra.Command{
		Use:   "convert [text]",
		Short: "Convert text to the type named by --to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := targetType(to)
			if err != nil {
				return err
			}
			v, err := opts.registry.Convert(args[0], typ)
			if err != nil {
				return err
			}
			res := result{Input: args[0], Type: typ.String(), Absent: v == nil}
			if v != nil {
				if res.Value, err = display(opts.registry, v); err != nil {
					return err
				}
			}

			switch output {
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer enc.Close()
				return enc.Encode(res)
			case "text", "":
				if res.Absent {
					fmt.Fprintln(cmd.OutOrStdout(), "<absent>")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.Value)
				return nil
			default:
				return fmt.Errorf("unknown output %q (text or yaml)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&to, "to", "t", "string", "target type")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or yaml")
	return cmd
}

// display formats v back to text through the registry.
func display(r *adapt.Registry, v any) (string, error) {
	s, err := r.Convert(v, reflect.TypeOf(""))
	if err != nil {
		return "", err
	}
	text, _ := s.(string)
	return text, nil
}
