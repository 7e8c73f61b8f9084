// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newComponentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components <model.hcl>",
		Short: "Print the dependence components of the model's random variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModel(cmd, args)
			if err != nil {
				return err
			}
			groups, err := m.Components()
			if err != nil {
				return err
			}
			for _, g := range groups {
				names := make([]string, len(g))
				for i, v := range g {
					names[i] = v.Name()
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " ")); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
