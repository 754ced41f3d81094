package llm_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"jurisflow/internal/llm"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", llm.Truncate("abc", 5))
	assert.Equal(t, "ab...", llm.Truncate("abcdef", 2))
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	got := llm.Truncate("ação", 2)
	assert.Equal(t, "aç...", got)
	assert.True(t, utf8.ValidString(got))

	assert.Equal(t, "decisão", llm.Truncate("decisão", 7))
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		max       int
		want      string
		truncated bool
	}{
		{"shorter", "ação", 10, "ação", false},
		{"exact", "ação", 4, "ação", false},
		{"multibyte cut", "petição inicial", 7, "petição", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := llm.TruncateRunes(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.truncated, truncated)
		})
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, llm.StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, llm.StripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, "plain", llm.StripFences("  plain  "))
}

func TestJSONObject(t *testing.T) {
	raw, ok := llm.JSONObject("```json\n{\"fatos\":\"x\"}\n```")
	assert.True(t, ok)
	assert.JSONEq(t, `{"fatos":"x"}`, string(raw))

	_, ok = llm.JSONObject("FATOS: texto livre")
	assert.False(t, ok)

	_, ok = llm.JSONObject(`[1,2]`)
	assert.False(t, ok)

	_, ok = llm.JSONObject(`{"broken":`)
	assert.False(t, ok)
}
