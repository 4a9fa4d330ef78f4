package transmute_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/transmute"
)

func TestDecodeConfigDefaults(t *testing.T) {
	config, err := transmute.NewDecodeConfig()
	require.NoError(t, err)
	assert.Equal(t, transmute.AllOrNothing, config.Guard)
	assert.Equal(t, transmute.DefaultAllocator, config.Allocator)
	assert.Equal(t, 0, config.SizeHint)
}

func TestDecodeConfigOptions(t *testing.T) {
	arena := new(transmute.Arena)

	config, err := transmute.NewDecodeConfig(
		transmute.Pedantic,
		transmute.SizeHint(4096),
		transmute.UseAllocator(arena),
	)
	require.NoError(t, err)
	assert.Equal(t, transmute.Pedantic, config.Guard)
	assert.Equal(t, 4096, config.SizeHint)
	assert.Same(t, arena, config.Allocator)
}

func TestDecodeConfigConfigure(t *testing.T) {
	base := &transmute.DecodeConfig{SizeHint: 128}

	config, err := transmute.NewDecodeConfig(transmute.SizeHint(64), base)
	require.NoError(t, err)
	assert.Equal(t, transmute.Permissive, config.Guard, "the guard of a config value always applies")
	assert.Equal(t, 128, config.SizeHint)
	assert.Equal(t, transmute.DefaultAllocator, config.Allocator, "unset fields keep their current value")
}

func TestDecodeConfigValidate(t *testing.T) {
	_, err := transmute.NewDecodeConfig(
		transmute.Guard(100),
		transmute.SizeHint(-1),
		transmute.UseAllocator(nil),
	)
	require.Error(t, err)

	lines := strings.Split(err.Error(), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "transmute.(*DecodeConfig).Guard")
	assert.Contains(t, lines[1], "transmute.(*DecodeConfig).Allocator")
	assert.Contains(t, lines[2], "transmute.(*DecodeConfig).SizeHint")
}
