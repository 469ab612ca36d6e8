package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "single entry",
			input:    "https://app.example.com",
			expected: []string{"https://app.example.com"},
		},
		{
			name:     "trims whitespace",
			input:    " foo , bar ,baz",
			expected: []string{"foo", "bar", "baz"},
		},
		{
			name:     "drops empty entries",
			input:    "foo,,bar,  ,",
			expected: []string{"foo", "bar"},
		},
		{
			name:     "removes duplicates preserving order",
			input:    "foo,bar,foo,baz,bar",
			expected: []string{"foo", "bar", "baz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}

func TestSplitListLower(t *testing.T) {
	assert.Equal(t, []string{"foo.vercel.app", "bar.vercel.app"},
		SplitListLower("Foo.vercel.app, BAR.vercel.app, foo.vercel.app"))
}
