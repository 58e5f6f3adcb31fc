package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/pqbench/internal/synth"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{})
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, synth.DefaultTemplate(), cfg.Template())
}

func TestNewConfig_Validation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "unknown format", cfg: Config{Format: "toml"}, wantErr: "unknown format"},
		{name: "negative users", cfg: Config{Users: -1}, wantErr: "must not be negative"},
		{name: "no experiments at all", cfg: Config{NoBuiltin: true}, wantErr: "ExperimentsPath is required"},
		{name: "bad log level", cfg: Config{LogLevel: "loud"}, wantErr: "invalid log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewConfig(tc.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConfig_TemplateOverrides(t *testing.T) {
	t.Parallel()

	cfg := &Config{ServerPath: "/bin/pq", Users: 3, Duration: 9}

	tmpl := cfg.Template()

	assert.Equal(t, "/bin/pq", tmpl.ServerPath)
	assert.Equal(t, 3, tmpl.Users)
	assert.Equal(t, 9, tmpl.Duration)
	assert.Equal(t, synth.DefaultPopDuration, tmpl.PopDuration)
	assert.True(t, tmpl.Verbose)
}
