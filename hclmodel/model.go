// SPDX-License-Identifier: MIT
package hclmodel

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/katalvlaran/algmoments/dynsys"
	"github.com/katalvlaran/algmoments/inequality"
	"github.com/katalvlaran/algmoments/internal/ctxlog"
	"github.com/katalvlaran/algmoments/moment"
	"github.com/katalvlaran/algmoments/momentexpr"
	"github.com/katalvlaran/algmoments/poly"
	"github.com/katalvlaran/algmoments/treering"
)

var (
	// ErrDuplicateVariable indicates two variable blocks with one name.
	ErrDuplicateVariable = errors.New("hclmodel: duplicate variable")

	// ErrBadDependence indicates a dependence entry that is not a pair of
	// random variables of the same kind.
	ErrBadDependence = errors.New("hclmodel: invalid dependence")

	// ErrNoSystem is returned by Model accessors that need state blocks.
	ErrNoSystem = errors.New("hclmodel: model declares no state variables")

	// ErrNoInequality is returned when a model has no inequality block.
	ErrNoInequality = errors.New("hclmodel: model has no inequality block")
)

// fileRoot mirrors the top level of a model file.
type fileRoot struct {
	Mode          string             `hcl:"mode,optional"`
	Dependence    [][]string         `hcl:"dependence,optional"`
	States        []*stateBlock      `hcl:"state,block"`
	Disturbances  []*variableBlock   `hcl:"disturbance,block"`
	Randoms       []*variableBlock   `hcl:"random,block"`
	Controls      []*variableBlock   `hcl:"control,block"`
	Deterministic []*variableBlock   `hcl:"deterministic,block"`
	Moments       []*momentBlock     `hcl:"moment,block"`
	Expressions   []*expressionBlock `hcl:"expression,block"`
	Inequality    *inequalityBlock   `hcl:"inequality,block"`
}

type stateBlock struct {
	Name   string         `hcl:"name,label"`
	Update hcl.Expression `hcl:"update"`
}

type variableBlock struct {
	Name string `hcl:"name,label"`
}

type momentBlock struct {
	Powers map[string]int `hcl:"powers"`
}

type expressionBlock struct {
	Name  string         `hcl:"name,label"`
	Value hcl.Expression `hcl:"value"`
}

type inequalityBlock struct {
	Kind       string         `hcl:"kind"`
	Constraint hcl.Expression `hcl:"constraint"`
}

// InequalityProblem is a concentration inequality request.
type InequalityProblem struct {
	Kind       inequality.Kind
	Constraint poly.Poly
}

// Model is a decoded model file.
type Model struct {
	// Mode is the closure mode; "reduced" when unset.
	Mode treering.Mode

	// Variables lists every declared variable in declaration order, by role:
	// states, disturbances, controls.
	Variables []moment.Variable

	// System is the polynomial dynamical system; nil without state blocks.
	System *dynsys.PolyDynamicalSystem

	// Initial lists the target moments of the closure problem.
	Initial []*moment.Moment

	// RandomVector holds every random variable with all declared
	// dependencies.
	RandomVector *moment.RandomVector

	// Deterministic lists the control variables.
	Deterministic []moment.Variable

	// Expressions lists the named expressions.
	Expressions []momentexpr.Named

	// Inequality is nil unless an inequality block is present.
	Inequality *InequalityProblem
}

// Load parses and decodes the model file at path.
func Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading model.", "path", path)

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("hclmodel: failed to parse %s: %w", path, diags)
	}

	return decode(ctx, path, file.Body)
}

// Parse decodes a model from src; filename is used in diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (*Model, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("hclmodel: failed to parse %s: %w", filename, diags)
	}

	return decode(ctx, filename, file.Body)
}

func decode(ctx context.Context, filename string, body hcl.Body) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("hclmodel: failed to decode %s: %w", filename, diags)
	}

	b := &builder{vars: make(map[string]moment.Variable)}
	if err := b.declare(&root); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	m, err := b.build(&root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logger.Debug("Model decoded.",
		"file", filename,
		"mode", m.Mode.String(),
		"variables", len(m.Variables),
		"moments", len(m.Initial),
		"expressions", len(m.Expressions),
		"inequality", m.Inequality != nil)

	return m, nil
}

// builder accumulates declarations while a model is decoded.
type builder struct {
	vars      map[string]moment.Variable
	states    []moment.Variable
	randoms   []moment.Variable
	controls  []moment.Variable
	stateDeps []moment.Dependence
	distDeps  []moment.Dependence
}

func (b *builder) declare(root *fileRoot) error {
	groups := []struct {
		kind   string
		blocks []*variableBlock
	}{
		{"disturbance", root.Disturbances},
		{"random", root.Randoms},
		{"control", root.Controls},
		{"deterministic", root.Deterministic},
	}

	for _, s := range root.States {
		if err := b.add(s.Name, "state"); err != nil {
			return err
		}
	}
	for _, g := range groups {
		for _, blk := range g.blocks {
			if err := b.add(blk.Name, g.kind); err != nil {
				return err
			}
		}
	}

	for i, pair := range root.Dependence {
		if len(pair) != 2 {
			return fmt.Errorf("%w: entry %d has %d names", ErrBadDependence, i, len(pair))
		}
		a, okA := b.vars[pair[0]]
		c, okC := b.vars[pair[1]]
		switch {
		case !okA || !okC:
			return fmt.Errorf("%w: %v names an undeclared variable", ErrBadDependence, pair)
		case a.Role() == moment.RoleState && c.Role() == moment.RoleState:
			b.stateDeps = append(b.stateDeps, moment.Dependence{a, c})
		case a.Role() == moment.RoleDisturbance && c.Role() == moment.RoleDisturbance:
			b.distDeps = append(b.distDeps, moment.Dependence{a, c})
		default:
			return fmt.Errorf("%w: %v pairs a %s with a %s", ErrBadDependence, pair, a.Role(), c.Role())
		}
	}

	return nil
}

func (b *builder) add(name, kind string) error {
	role, err := moment.ParseRole(kind)
	if err != nil {
		return err
	}
	v, err := moment.NewVariable(name, role)
	if err != nil {
		return err
	}
	if _, dup := b.vars[name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateVariable, name)
	}
	b.vars[name] = v
	switch role {
	case moment.RoleState:
		b.states = append(b.states, v)
	case moment.RoleDisturbance:
		b.randoms = append(b.randoms, v)
	default:
		b.controls = append(b.controls, v)
	}

	return nil
}

func (b *builder) build(root *fileRoot) (*Model, error) {
	mode, err := treering.ParseMode(root.Mode)
	if err != nil {
		return nil, err
	}
	m := &Model{
		Mode:          mode,
		Deterministic: b.controls,
	}
	m.Variables = append(append(append(m.Variables, b.states...), b.randoms...), b.controls...)

	allRandom := append(append([]moment.Variable(nil), b.states...), b.randoms...)
	m.RandomVector, err = moment.NewRandomVector(allRandom, append(append([]moment.Dependence(nil), b.stateDeps...), b.distDeps...))
	if err != nil {
		return nil, err
	}

	if len(root.States) > 0 {
		dist, err := moment.NewRandomVector(b.randoms, b.distDeps)
		if err != nil {
			return nil, err
		}
		updates := make([]dynsys.StateUpdate, 0, len(root.States))
		for _, s := range root.States {
			p, err := toPoly(s.Update, b.vars)
			if err != nil {
				return nil, fmt.Errorf("state %s: %w", s.Name, err)
			}
			updates = append(updates, dynsys.StateUpdate{Var: b.vars[s.Name], Update: p})
		}
		m.System, err = dynsys.NewPolyDynamicalSystem(updates, b.controls, dist, b.stateDeps)
		if err != nil {
			return nil, err
		}
	}

	for i, mb := range root.Moments {
		vpm := make(map[moment.Variable]int, len(mb.Powers))
		for name, pow := range mb.Powers {
			v, ok := b.vars[name]
			if !ok {
				return nil, fmt.Errorf("moment %d: %w: %s", i, ErrUnknownVariable, name)
			}
			vpm[v] = pow
		}
		mom, err := moment.New(vpm)
		if err != nil {
			return nil, fmt.Errorf("moment %d: %w", i, err)
		}
		m.Initial = append(m.Initial, mom)
	}

	for _, eb := range root.Expressions {
		p, err := toPoly(eb.Value, b.vars)
		if err != nil {
			return nil, fmt.Errorf("expression %s: %w", eb.Name, err)
		}
		m.Expressions = append(m.Expressions, momentexpr.Named{Name: eb.Name, Expr: p})
	}

	if ib := root.Inequality; ib != nil {
		kind, err := inequality.ParseKind(ib.Kind)
		if err != nil {
			return nil, err
		}
		p, err := toPoly(ib.Constraint, b.vars)
		if err != nil {
			return nil, fmt.Errorf("inequality: %w", err)
		}
		m.Inequality = &InequalityProblem{Kind: kind, Constraint: p}
	}

	return m, nil
}

// Closure runs the closure search for the model's target moments.
func (m *Model) Closure(ctx context.Context, opts ...treering.Option) (*dynsys.MomentStateDynamicalSystem, error) {
	if m.System == nil {
		return nil, ErrNoSystem
	}
	base := []treering.Option{
		treering.WithContext(ctx),
		treering.WithMode(m.Mode),
		treering.WithLogger(ctxlog.FromContext(ctx)),
	}

	return treering.Run(m.Initial, m.System, append(base, opts...)...)
}

// MomentExpressions generates the model's named expressions over its
// random vector.
func (m *Model) MomentExpressions(ctx context.Context) (*momentexpr.MomentExpressions, error) {
	return momentexpr.Generate(m.Expressions, m.RandomVector, m.Deterministic,
		momentexpr.WithLogger(ctxlog.FromContext(ctx)))
}

// ConcentrationInequality builds the model's inequality, with kind
// overriding the file's when non-nil.
func (m *Model) ConcentrationInequality(ctx context.Context, kind *inequality.Kind) (*inequality.Inequality, error) {
	if m.Inequality == nil {
		return nil, ErrNoInequality
	}
	k := m.Inequality.Kind
	if kind != nil {
		k = *kind
	}

	return inequality.New(m.Inequality.Constraint, m.RandomVector, m.Deterministic, k,
		momentexpr.WithLogger(ctxlog.FromContext(ctx)))
}

// Components returns the dependence components of all random variables.
func (m *Model) Components() ([][]moment.Variable, error) {
	return m.RandomVector.Components(m.RandomVector.Variables())
}
