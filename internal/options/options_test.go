package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeConfig struct {
	precision int
	label     string
}

func TestNew_PropagatesError(t *testing.T) {
	cfg := &fakeConfig{}

	opt := New(func(c *fakeConfig) error {
		if c.precision < 0 {
			return errors.New("negative precision")
		}
		c.precision = 4

		return nil
	})
	require.NoError(t, Apply(cfg, opt))
	require.Equal(t, 4, cfg.precision)

	cfg.precision = -1
	require.Error(t, Apply(cfg, opt))
}

func TestNoError(t *testing.T) {
	cfg := &fakeConfig{}
	opt := NoError(func(c *fakeConfig) { c.label = "trial" })

	require.NoError(t, Apply(cfg, opt))
	require.Equal(t, "trial", cfg.label)
}

func TestApply_Order(t *testing.T) {
	cfg := &fakeConfig{}
	first := NoError(func(c *fakeConfig) { c.precision = 1 })
	second := NoError(func(c *fakeConfig) { c.precision = 2 })
	failing := New(func(c *fakeConfig) error { return errors.New("boom") })
	third := NoError(func(c *fakeConfig) { c.precision = 3 })

	err := Apply(cfg, first, second, failing, third)
	require.Error(t, err)
	require.Equal(t, 2, cfg.precision, "options after a failure must not run")
}
