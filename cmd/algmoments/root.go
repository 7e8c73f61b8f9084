// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/algmoments/config"
	"github.com/katalvlaran/algmoments/hclmodel"
	"github.com/katalvlaran/algmoments/internal/ctxlog"
	"github.com/katalvlaran/algmoments/render"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// newRootCmd builds the command tree. cfg supplies flag defaults.
func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "algmoments",
		Short:        "Derive moment-propagation code for polynomial stochastic systems",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(ctxlog.WithLogger(ctx, logger))

			return nil
		},
	}

	root.AddCommand(
		newClosureCmd(cfg),
		newExpressionsCmd(cfg),
		newInequalityCmd(cfg),
		newComponentsCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "algmoments", version)
			return err
		},
	}
}

// loadModel loads the model file named by the single positional argument.
func loadModel(cmd *cobra.Command, args []string) (*hclmodel.Model, error) {
	return hclmodel.Load(cmd.Context(), args[0])
}

// newRenderer resolves the --syntax flag value.
func newRenderer(name string, opts ...render.Option) (render.Renderer, error) {
	s, err := render.ParseSyntax(name)
	if err != nil {
		return nil, err
	}

	return render.New(s, opts...)
}
