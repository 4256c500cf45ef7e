package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateReplayFinished, "ReplayFinished"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameState_AcceptsInput(t *testing.T) {
	assert.True(t, StatePlaying.AcceptsInput())
	assert.False(t, StatePaused.AcceptsInput())
	assert.False(t, StateReplayFinished.AcceptsInput())
}
