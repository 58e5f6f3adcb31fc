package catalog

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/pqbench/internal/config"
	"github.com/vk/pqbench/internal/ctxlog"
	"github.com/vk/pqbench/internal/experiment"
	"github.com/vk/pqbench/internal/synth"
)

func buildDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Build(ctxlog.Discard(context.Background()), synth.DefaultTemplate())
	require.NoError(t, err)
	return c
}

func commandsOf(t *testing.T, c *Catalog, name string) experiment.Commands {
	t.Helper()
	e, err := c.Get(name)
	require.NoError(t, err)
	require.Equal(t, 1, e.Len())
	d, _ := e.Definition(0)
	return d.Commands
}

func TestBuild_RegistersBuiltinsInOrder(t *testing.T) {
	t.Parallel()

	c := buildDefault(t)

	assert.Equal(t, []string{"basic", "writearound", "postgres", "eviction"}, slices.Collect(c.List()))
}

func TestBuild_FreshInstances(t *testing.T) {
	t.Parallel()

	a := buildDefault(t)
	b := buildDefault(t)

	ea, _ := a.Get("basic")
	eb, _ := b.Get("basic")
	assert.NotSame(t, ea, eb)
}

func TestBuild_CommandLines(t *testing.T) {
	t.Parallel()

	const (
		server   = "./obj/pqserver"
		initCmd  = server + " --twitternew --verbose --no-binary --initialize --no-populate --no-execute"
		populate = server + " --twitternew --verbose --no-binary --no-initialize --no-execute --popduration=0 --nusers=1000"
		client   = server + " --twitternew --verbose --no-binary --no-initialize --no-populate --nusers=1000 --duration=100000"
	)

	testCases := []struct {
		name string
		want experiment.Commands
	}{
		{
			name: "basic",
			want: experiment.Commands{Init: initCmd, Populate: populate, Backend: server, Cache: server, Client: client},
		},
		{
			name: "writearound",
			want: experiment.Commands{
				Init:     initCmd,
				Populate: populate + " --dbpool-max=5 --dbpool-depth=10",
				Backend:  server,
				Cache:    server,
				Client:   client + " --dbpool-max=5 --dbpool-depth=10",
			},
		},
		{
			name: "postgres",
			want: experiment.Commands{
				Populate: server + " --twitternew --verbose --dbshim --no-binary --no-execute --popduration=0 --nusers=1000 --dbpool-max=5 --dbpool-depth=100",
				Backend:  server,
				Cache:    server,
				Client:   server + " --twitternew --verbose --dbshim --no-binary --no-populate --nusers=1000 --duration=100000 --psubscribe=0 --plogin=0 --plogout=0 --dbpool-depth=100",
			},
		},
		{
			name: "eviction",
			want: experiment.Commands{
				Init:     initCmd,
				Populate: populate + " --dbpool-max=5 --dbpool-depth=10",
				Backend:  server + " --evict-periodic --mem-lo=20 --mem-hi=25",
				Cache:    server + " --evict-periodic --mem-lo=15 --mem-hi=20",
				Client:   client + " --dbpool-max=5 --dbpool-depth=10",
			},
		},
	}

	c := buildDefault(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tc.want, commandsOf(t, c, tc.name)); diff != "" {
				t.Fatalf("commands mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_DatabaseFields(t *testing.T) {
	t.Parallel()

	c := buildDefault(t)

	pg, err := c.Get("postgres")
	require.NoError(t, err)
	d, _ := pg.Definition(0)
	assert.Equal(t, "postgres", d.DB.Type)
	assert.True(t, d.DB.Compare)
	assert.Equal(t, "scripts/exp/twitter-pg-schema.sql", d.DB.SQLScript)
	assert.Contains(t, d.DB.Flags, "checkpoint_segments=600")

	basic, err := c.Get("basic")
	require.NoError(t, err)
	d, _ = basic.Definition(0)
	assert.False(t, d.DB.Enabled())
	assert.Empty(t, d.DB.Flags)
	assert.Empty(t, d.DB.SQLScript)
}

func TestPopulate_RejectsCollisionWithBuiltin(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	c := buildDefault(t)
	model := &config.Model{Experiments: []*config.Experiment{{
		Name:        "basic",
		Source:      "extra.hcl",
		Definitions: []experiment.Overrides{{Part: "twitternew"}},
	}}}

	// --- Act ---
	err := c.Populate(ctxlog.Discard(context.Background()), synth.DefaultTemplate(), model)

	// --- Assert ---
	var dup *experiment.DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Contains(t, err.Error(), "extra.hcl")
	assert.Equal(t, 4, c.Len())
}

func TestPopulate_ReportsMissingConfiguration(t *testing.T) {
	t.Parallel()

	model := &config.Model{Experiments: []*config.Experiment{{
		Name:        "incomplete",
		Definitions: []experiment.Overrides{{Part: "twitternew"}, {}},
	}}}

	err := New().Populate(ctxlog.Discard(context.Background()), synth.DefaultTemplate(), model)

	var missing *experiment.MissingConfigurationError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "incomplete", missing.Experiment)
	assert.Equal(t, 1, missing.Position)
	assert.Equal(t, "def_part", missing.Field)
}

func TestBuild_MissingServerPath(t *testing.T) {
	t.Parallel()

	_, err := Build(ctxlog.Discard(context.Background()), synth.Template{})

	var missing *experiment.MissingConfigurationError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "basic", missing.Experiment)
	assert.Equal(t, "server_path", missing.Field)
}
