// SPDX-License-Identifier: MIT
package moment_test

import (
	"testing"

	"github.com/katalvlaran/algmoments/moment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_ResolveDeduplicates(t *testing.T) {
	p := moment.NewPool()

	a, created, err := p.Resolve(moment.VPM{x: 1, y: 2})
	require.NoError(t, err)
	assert.True(t, created)

	b, created, err := p.Resolve(moment.VPM{y: 2, x: 1})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, a, b)

	c, created, err := p.Resolve(moment.VPM{x: 1, y: 3})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotSame(t, a, c)

	assert.Equal(t, []*moment.Moment{a, c}, p.Moments())
	assert.Equal(t, 2, p.Len())
}

func TestPool_SeedIsReused(t *testing.T) {
	seed := moment.MustNew(map[moment.Variable]int{x: 2})
	p := moment.NewPool(seed, nil)

	got, created, err := p.Resolve(moment.VPM{x: 2})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, seed, got)
}

func TestPool_InconsistentIsFatal(t *testing.T) {
	a := moment.MustNew(map[moment.Variable]int{x: 1})
	b := moment.MustNew(map[moment.Variable]int{x: 1})
	p := moment.NewPool(a, b)

	m, created, err := p.Resolve(moment.VPM{x: 1})
	require.ErrorIs(t, err, moment.ErrPoolInconsistent)
	assert.Nil(t, m)
	assert.False(t, created)
	assert.Equal(t, 2, p.Len(), "no repair is attempted")

	// Unrelated lookups still work.
	_, created, err = p.Resolve(moment.VPM{y: 1})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestPool_NameCollisionIsRejected(t *testing.T) {
	// "aPow1_b" to the first power renders exactly like a*b.
	odd := moment.State("aPow1_b")
	a, b := moment.State("a"), moment.State("b")
	p := moment.NewPool()

	m1, _, err := p.Resolve(moment.VPM{odd: 1})
	require.NoError(t, err)
	_, _, err = p.Resolve(moment.VPM{a: 1, b: 1})
	require.ErrorIs(t, err, moment.ErrNameCollision)
	assert.Equal(t, 1, p.Len())

	again, created, err := p.Resolve(moment.VPM{odd: 1})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, m1, again)
}
