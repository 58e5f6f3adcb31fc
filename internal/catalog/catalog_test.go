package catalog

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/pqbench/internal/experiment"
	"github.com/vk/pqbench/internal/synth"
)

func newExperiment(t *testing.T, name string) *experiment.Experiment {
	t.Helper()
	e, err := synth.Experiment(synth.DefaultTemplate(), name, experiment.Overrides{Part: "twitternew-text"})
	require.NoError(t, err)
	return e
}

func TestRegister_GetReturnsSameRecord(t *testing.T) {
	t.Parallel()

	c := New()
	e := newExperiment(t, "basic")
	require.NoError(t, c.Register(e))

	got, err := c.Get("basic")
	require.NoError(t, err)
	assert.Same(t, e, got)
}

func TestRegister_DuplicateKeepsFirst(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	c := New()
	first := newExperiment(t, "basic")
	second := newExperiment(t, "basic")
	require.NoError(t, c.Register(first))

	// --- Act ---
	err := c.Register(second)

	// --- Assert ---
	var dup *experiment.DuplicateNameError
	require.True(t, errors.As(err, &dup), "expected DuplicateNameError, got %v", err)
	assert.Equal(t, "basic", dup.Name)

	got, err := c.Get("basic")
	require.NoError(t, err)
	assert.Same(t, first, got)
	assert.Equal(t, 1, c.Len())
}

func TestRegister_RejectsNil(t *testing.T) {
	t.Parallel()

	c := New()

	err := c.Register(nil)

	require.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	_, err := New().Get("missing")

	var nf *experiment.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missing", nf.Name)
}

func TestList_OrderedAndRestartable(t *testing.T) {
	t.Parallel()

	c := New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, c.Register(newExperiment(t, name)))
	}

	first := slices.Collect(c.List())
	second := slices.Collect(c.List())

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, first)
	assert.Equal(t, first, second)

	// Stopping early must not disturb later iterations.
	for name := range c.List() {
		assert.Equal(t, "zeta", name)
		break
	}
	assert.Len(t, slices.Collect(c.All()), 3)
}
