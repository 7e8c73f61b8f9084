// SPDX-License-Identifier: MIT
package main

import (
	"github.com/katalvlaran/algmoments/config"
	"github.com/katalvlaran/algmoments/inequality"
	"github.com/katalvlaran/algmoments/render"
	"github.com/spf13/cobra"
)

func newExpressionsCmd(cfg config.Config) *cobra.Command {
	var (
		syntax   string
		multiIdx bool
	)
	cmd := &cobra.Command{
		Use:   "expressions <model.hcl>",
		Short: "Print the moment form of the model's named expressions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModel(cmd, args)
			if err != nil {
				return err
			}
			me, err := m.MomentExpressions(cmd.Context())
			if err != nil {
				return err
			}
			var opts []render.Option
			if multiIdx {
				opts = append(opts, render.WithMultiIdxKeys())
			}
			r, err := newRenderer(syntax, opts...)
			if err != nil {
				return err
			}

			return r.MomentExpressions(cmd.OutOrStdout(), me)
		},
	}

	cmd.Flags().StringVar(&syntax, "syntax", cfg.Syntax, "output syntax: python, octave (matlab) or cpp")
	cmd.Flags().BoolVar(&multiIdx, "multi-idx", false, "python: key input moments by exponent tuple")

	return cmd
}

func newInequalityCmd(cfg config.Config) *cobra.Command {
	var (
		syntax string
		kind   string
	)
	cmd := &cobra.Command{
		Use:   "inequality <model.hcl>",
		Short: "Print a concentration-inequality bound for the model's constraint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModel(cmd, args)
			if err != nil {
				return err
			}
			var override *inequality.Kind
			if kind != "" {
				k, err := inequality.ParseKind(kind)
				if err != nil {
					return err
				}
				override = &k
			}
			ci, err := m.ConcentrationInequality(cmd.Context(), override)
			if err != nil {
				return err
			}
			r, err := newRenderer(syntax)
			if err != nil {
				return err
			}

			return r.Inequality(cmd.OutOrStdout(), ci)
		},
	}

	cmd.Flags().StringVar(&syntax, "syntax", cfg.Syntax, "output syntax: python, octave (matlab) or cpp")
	cmd.Flags().StringVar(&kind, "kind", "", "cantelli, vp or gauss (default: the model's)")

	return cmd
}
