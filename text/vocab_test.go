package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClickAction(t *testing.T) {
	for _, tag := range []string{"open_url", "open_file", "run_command", "suggest_command", "change_page", "copy_to_clipboard"} {
		a, err := ParseClickAction(tag)
		require.NoError(t, err)
		assert.Equal(t, tag, a.String())
	}

	for _, bad := range []string{"", "OPEN_URL", "openUrl", "open-url"} {
		_, err := ParseClickAction(bad)
		assert.ErrorIs(t, err, ErrInvalidEnumValue, bad)
	}
}

func TestParseHoverAction(t *testing.T) {
	a, err := ParseHoverAction("show_entity")
	require.NoError(t, err)
	assert.Equal(t, ShowEntity, a)

	_, err = ParseHoverAction("show_achievement")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
}

func TestParseContentType(t *testing.T) {
	ct, err := ParseContentType("keybind")
	require.NoError(t, err)
	assert.Equal(t, TypeKeybind, ct)

	_, err = ParseContentType("nbt")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
}

func TestValidateColor(t *testing.T) {
	cases := []struct {
		color string
		ok    bool
	}{
		{"", true},
		{"blue", true},
		{"dark_aqua", true},
		{"#00ff7F", true},
		{"Blue", false},
		{"#00ff7", false},
		{"#00ff7g", false},
		{"00ff7f0", false},
		{"purple", false},
	}
	for _, c := range cases {
		err := ValidateColor(c.color)
		if c.ok {
			assert.NoError(t, err, c.color)
		} else {
			assert.ErrorIs(t, err, ErrInvalidColor, c.color)
		}
	}
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("strict")
	require.NoError(t, err)
	assert.Equal(t, Strict, d)

	_, err = ParseDialect("python")
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
}
