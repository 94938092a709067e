package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma", `"$1,100.00",220`, []string{"$1,100.00", "220"}},
		{"trailing comma", "a,", []string{"a", ""}},
		{"trimmed", "  a , b ", []string{"a", "b"}},
		{"single", "solo", []string{"solo"}},
		{"empty", "", []string{""}},
		{"quotes dropped", `"x","y"`, []string{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitFields(tt.line))
		})
	}
}

func TestLines(t *testing.T) {
	text := "first\r\n\r\n  second  \n\n\tthird\n"
	assert.Equal(t, []string{"first", "second", "third"}, Lines(text))
	assert.Empty(t, Lines(" \n\r\n"))
}

func TestZipPadsMissingValues(t *testing.T) {
	rec := zip([]string{"a", "b", "c"}, []string{"1"})
	assert.Equal(t, map[string]string{"a": "1", "b": "", "c": ""}, rec)
}
