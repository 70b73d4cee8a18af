package conditioner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrokeState(t *testing.T) {
	tests := []struct {
		state  StrokeState
		name   string
		idle   bool
		active bool
	}{
		{StateNotStarted, "not-started", true, false},
		{StateStarted, "started", false, true},
		{StateEnding, "ending", false, true},
		{StateEnded, "ended", true, false},
		{StrokeState(42), "unknown", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.state.String())
			assert.Equal(t, tt.idle, tt.state.idle())
			assert.Equal(t, tt.active, tt.state.active())
		})
	}
}
