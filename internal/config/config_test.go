package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/delta-tetrahedron/internal/growth"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	p := cfg.Params()
	assert.Equal(t, 40, p.Effort)
	assert.Equal(t, 35, p.Resources)
	assert.Equal(t, "clarity", p.Concept)
	require.NotNil(t, p.Scalar)
	assert.Equal(t, 1.0, *p.Scalar)
	assert.Nil(t, p.Secondary)
	assert.Equal(t, 36, p.TimelineLength)
	assert.Equal(t, growth.UnitHours, p.TimelineUnit)
	assert.Empty(t, p.DomainViolations())

	eng, err := cfg.NewEngine()
	require.NoError(t, err)
	assert.Equal(t, growth.FallbackOverride, eng.Fallback())
	assert.False(t, eng.PerturbsFriction())
	assert.False(t, eng.FixedTimeline())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid default config", func(c *Config) {}, false},
		{"unknown variant", func(c *Config) { c.Engine.Variant = "beta" }, true},
		{"unknown fallback", func(c *Config) { c.Engine.Fallback = "guess" }, true},
		{"unknown unit", func(c *Config) { c.Inputs.TimelineUnit = "Years" }, true},
		{"out of domain effort is allowed", func(c *Config) { c.Inputs.Effort = 250 }, false},
		{"fixed fallback", func(c *Config) { c.Engine.Fallback = "fixed" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEngineOptions(t *testing.T) {
	on := true
	off := false
	cfg := DefaultConfig()
	cfg.Engine.Variant = growth.VariantClassic
	cfg.Engine.Fallback = "fixed"
	cfg.Engine.DefaultKappa = 0.75
	cfg.Engine.PerturbFriction = &on
	cfg.Engine.FixedTimeline = &off

	eng, err := cfg.NewEngine()
	require.NoError(t, err)
	assert.Equal(t, growth.FallbackFixed, eng.Fallback())
	assert.Equal(t, 0.75, eng.DefaultKappa())
	assert.True(t, eng.PerturbsFriction())
	assert.False(t, eng.FixedTimeline(), "explicit field overrides the preset")

	five := 5.0
	c := eng.ResolveConcept("entropy", &five)
	assert.Equal(t, 0.75, c.Kappa)
}

func TestParams_CopiesSecondary(t *testing.T) {
	cfg := DefaultConfig()
	v := 17
	cfg.Inputs.Secondary = &v

	p := cfg.Params()
	require.NotNil(t, p.Secondary)
	*p.Secondary = 3
	assert.Equal(t, 17, *cfg.Inputs.Secondary)
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "deltasim.yaml")

	content := `
engine:
  variant: perturbed
inputs:
  concept: Chaos
  secondary: 17
  timeline_unit: weeks
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, growth.VariantPerturbed, cfg.Engine.Variant)
	assert.Equal(t, "Chaos", cfg.Inputs.Concept)
	assert.Equal(t, 40, cfg.Inputs.Effort, "unset fields keep defaults")
	require.NotNil(t, cfg.Inputs.Secondary)

	eng, err := cfg.NewEngine()
	require.NoError(t, err)
	m := eng.Compute(cfg.Params())
	assert.Equal(t, 104.0, m.BaseFriction)
	assert.Equal(t, "Confusio", m.Label())
	assert.Equal(t, growth.UnitWeeks, m.TimelineUnit)
}

func TestLoadFromFile_NullScalar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deltasim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inputs:\n  concept: entropy\n  scalar: null\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Inputs.Scalar)

	eng, err := cfg.NewEngine()
	require.NoError(t, err)
	m := eng.Compute(cfg.Params())
	assert.Equal(t, growth.DefaultKappa, m.Kappa())
	assert.Equal(t, growth.DefaultLabel, m.Label())
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: [not, a, map"), 0644))
	_, err = LoadFromFile(path)
	assert.Error(t, err)
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Engine.Fallback = "fixed"

	require.NoError(t, cfg.SaveToFile(path))
	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func newTestLoader(home, work string, env map[string]string) *Loader {
	return &Loader{
		logger:  slog.Default(),
		homeDir: home,
		workDir: work,
		getenv:  func(k string) string { return env[k] },
	}
}

func TestLoader_Precedence(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()

	userDir := filepath.Join(home, UserConfigDir)
	require.NoError(t, os.MkdirAll(userDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, UserConfigFile),
		[]byte("inputs:\n  effort: 10\n  resources: 20\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(work, ProjectConfigFile),
		[]byte("inputs:\n  effort: 60\n"), 0644))

	explicit := filepath.Join(t.TempDir(), "explicit.yaml")
	require.NoError(t, os.WriteFile(explicit, []byte("inputs:\n  concept: trust\n"), 0644))

	l := newTestLoader(home, work, map[string]string{
		EnvFallback:        "fixed",
		EnvPerturbFriction: "true",
	})
	cfg, err := l.Load(explicit)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Inputs.Effort, "project overrides user")
	assert.Equal(t, 20, cfg.Inputs.Resources, "user overrides default")
	assert.Equal(t, "trust", cfg.Inputs.Concept, "explicit file applied")
	assert.Equal(t, "fixed", cfg.Engine.Fallback, "env applied last")
	require.NotNil(t, cfg.Engine.PerturbFriction)
	assert.True(t, *cfg.Engine.PerturbFriction)
}

func TestLoader_NoFiles(t *testing.T) {
	cfg, err := newTestLoader(t.TempDir(), t.TempDir(), nil).Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoader_Errors(t *testing.T) {
	l := newTestLoader("", "", nil)
	_, err := l.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	l = newTestLoader("", "", map[string]string{EnvPerturbFriction: "maybe"})
	_, err = l.Load("")
	assert.ErrorIs(t, err, ErrInvalid)

	l = newTestLoader("", "", map[string]string{EnvVariant: "nightly"})
	_, err = l.Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoader_BrokenProjectFileIsSkipped(t *testing.T) {
	work := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(work, ProjectConfigFile), []byte("inputs: [oops"), 0644))

	cfg, err := newTestLoader("", work, nil).Load("")
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Inputs.Effort)
}
