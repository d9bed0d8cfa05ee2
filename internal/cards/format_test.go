package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Description
	}{
		{
			name:     "Pendulum and monster effects",
			input:    "[ Pendulum Effect ] A [ Monster Effect ] B",
			expected: Description{Pendulum: "A", Monster: "B"},
		},
		{
			name:     "Plain text",
			input:    "plain text",
			expected: Description{Monster: "plain text"},
		},
		{
			name:     "Plain text is not trimmed",
			input:    "  plain text\n",
			expected: Description{Monster: "  plain text\n"},
		},
		{
			name:     "Pendulum marker without monster marker",
			input:    "[ Pendulum Effect ] only the scale text",
			expected: Description{Pendulum: "only the scale text"},
		},
		{
			name:     "Leading text before the pendulum marker is dropped",
			input:    "Scale 4 [ Pendulum Effect ]\nDraw 1.\n[ Monster Effect ]\nFLIP: destroy 1 card.",
			expected: Description{Pendulum: "Draw 1.", Monster: "FLIP: destroy 1 card."},
		},
		{
			name:     "Empty segments",
			input:    "[ Pendulum Effect ][ Monster Effect ]",
			expected: Description{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDescription(tt.input))
		})
	}
}

func TestHasPendulum(t *testing.T) {
	assert.True(t, HasPendulum("x [ Pendulum Effect ] y"))
	assert.False(t, HasPendulum("[ Monster Effect ] y"))
}
