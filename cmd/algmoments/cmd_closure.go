// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/katalvlaran/algmoments/config"
	"github.com/katalvlaran/algmoments/internal/ctxlog"
	"github.com/katalvlaran/algmoments/render"
	"github.com/katalvlaran/algmoments/treering"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newClosureCmd(cfg config.Config) *cobra.Command {
	var (
		syntax     string
		mode       string
		maxMoments int
		format     string
		ctypes     bool
	)
	cmd := &cobra.Command{
		Use:   "closure <model.hcl>",
		Short: "Close the model's target moments and print the propagation code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctxlog.FromContext(cmd.Context())
			m, err := loadModel(cmd, args)
			if err != nil {
				return err
			}

			opts := []treering.Option{treering.WithMaxMoments(maxMoments)}
			if mode != "" {
				md, err := treering.ParseMode(mode)
				if err != nil {
					return err
				}
				opts = append(opts, treering.WithMode(md))
			}
			closed, err := m.Closure(cmd.Context(), opts...)
			if err != nil {
				return err
			}
			logger.Debug("Closure computed.", "state_moments", closed.Len())

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(closed); err != nil {
					return err
				}
				return enc.Close()
			case "text":
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}

			r, err := newRenderer(syntax)
			if err != nil {
				return err
			}
			if err := r.MomentSystem(out, closed); err != nil {
				return err
			}
			if ctypes {
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
				return render.CtypesStructs(out, closed)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&syntax, "syntax", cfg.Syntax, "output syntax: python, octave (matlab) or cpp")
	cmd.Flags().StringVar(&mode, "mode", cfg.Mode, "closure mode: reduced or unreduced (default: the model's)")
	cmd.Flags().IntVar(&maxMoments, "max-moments", cfg.MaxMoments, "abort once the state exceeds this many moments (0: unbounded)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text (code) or yaml")
	cmd.Flags().BoolVar(&ctypes, "ctypes", false, "also print Python ctypes structures for the C++ inputs")

	return cmd
}
