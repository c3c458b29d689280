package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `{"programName": "Base Block"}`,
			want:  `{"programName": "Base Block"}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"programName\": \"Base Block\"}\n```",
			want:  `{"programName": "Base Block"}`,
		},
		{
			name:  "generic fence",
			input: "```\n{\"programName\": \"Base Block\"}\n```",
			want:  `{"programName": "Base Block"}`,
		},
		{
			name:  "fence with language identifier",
			input: "```javascript\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n{\"a\": 1}\n  ",
			want:  `{"a": 1}`,
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestConfig_GetModelFallback(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierLite: "gemini-2.5-flash-lite"},
	}

	// Unknown tier falls back through standard to lite.
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierAdvanced))

	empty := &Config{Provider: ProviderGemini}
	assert.Equal(t, "", empty.GetModel(TierStandard))
}

func TestConfig_WithModelDoesNotMutate(t *testing.T) {
	base := DefaultConfig()
	modified := base.WithModel(TierStandard, "gemini-custom")

	assert.Equal(t, "gemini-custom", modified.GetModel(TierStandard))
	assert.NotEqual(t, "gemini-custom", base.GetModel(TierStandard))
}
