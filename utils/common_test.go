package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"短文本原样返回", "hello", 10, "hello"},
		{"去除首尾空白", "  hi  ", 10, "hi"},
		{"按rune截断", "你好世界再见", 4, "你好世界..."},
		{"max为0不截断", "abcdef", 0, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preview(tt.input, tt.max))
		})
	}
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "*****", MaskSecret("short"))
	assert.Equal(t, "sk-***wxyz", MaskSecret("sk-1234567890abcdefghijklmnopqrstuvwxyz"))
}

func TestStringSliceContains(t *testing.T) {
	assert.True(t, StringSliceContains([]string{"gpt-4", "gpt-4o"}, "gpt-4o"))
	assert.False(t, StringSliceContains([]string{"gpt-4"}, "gpt-4o"))
	assert.False(t, StringSliceContains(nil, ""))
}
