package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		expected Identity
	}{
		{
			name:     "absent optionals default",
			req:      Request{Email: "jane@example.com"},
			expected: Identity{Name: "Guest", Email: "jane@example.com"},
		},
		{
			name:     "blank name defaults",
			req:      Request{Email: "jane@example.com", Name: strPtr("   ")},
			expected: Identity{Name: "Guest", Email: "jane@example.com"},
		},
		{
			name:     "empty photo URL stays absent",
			req:      Request{Email: "jane@example.com", PhotoURL: strPtr("")},
			expected: Identity{Name: "Guest", Email: "jane@example.com"},
		},
		{
			name: "provided fields pass through",
			req:  Request{Email: "jane@example.com", Name: strPtr("Jane Doe"), PhotoURL: strPtr("https://example.com/j.png")},
			expected: Identity{
				Name:     "Jane Doe",
				Email:    "jane@example.com",
				PhotoURL: strPtr("https://example.com/j.png"),
			},
		},
		{
			name:     "surrounding whitespace trimmed from name",
			req:      Request{Email: "jane@example.com", Name: strPtr("  Jane  ")},
			expected: Identity{Name: "Jane", Email: "jane@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.req))
		})
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	req := Request{Email: "jane@example.com", Name: strPtr("Jane Doe")}
	assert.Equal(t, Normalize(req), Normalize(req))
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		expected string
	}{
		{"simple name", Identity{Name: "Jane Doe"}, "jane_doe_badge.png"},
		{"defaulted name", Identity{Name: "Guest"}, "guest_badge.png"},
		{"irregular whitespace collapsed", Identity{Name: "  Ada \t Lovelace   King "}, "ada_lovelace_king_badge.png"},
		{"mixed case lowered", Identity{Name: "McGregor"}, "mcgregor_badge.png"},
		{"empty name falls back", Identity{}, "guest_badge.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.identity.Filename())
		})
	}
}
