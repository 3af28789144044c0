package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtension(t *testing.T) {
	tests := []struct {
		input string
		want  Extension
	}{
		{input: "", want: ExtensionNone},
		{input: "none", want: ExtensionNone},
		{input: "typed-config", want: ExtensionTypedConfig},
		{input: "typed-config-and-engine", want: ExtensionTypedConfigAndEngine},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseExtension(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExtension_Unknown(t *testing.T) {
	for _, s := range []string{"typed_config", "engine", "all", "None"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseExtension(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownExtension)
			assert.Contains(t, err.Error(), s)
		})
	}
}

func TestExtension_String(t *testing.T) {
	assert.Equal(t, "none", ExtensionNone.String())
	assert.Equal(t, "typed-config", ExtensionTypedConfig.String())
	assert.Equal(t, "typed-config-and-engine", ExtensionTypedConfigAndEngine.String())
}
