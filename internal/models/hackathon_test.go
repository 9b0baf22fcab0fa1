package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanJoin(t *testing.T) {
	hackathon := &Hackathon{Status: HackathonStatusOpen, MaxParticipants: 60, CurrentParticipants: 45}
	assert.True(t, hackathon.CanJoin())

	hackathon.CurrentParticipants = 60
	assert.True(t, hackathon.IsFull())
	assert.False(t, hackathon.CanJoin())

	hackathon.CurrentParticipants = 10
	hackathon.Status = HackathonStatusDraft
	assert.False(t, hackathon.CanJoin())
}

func TestProgressPercentage(t *testing.T) {
	hackathon := &Hackathon{MaxParticipants: 100, CurrentParticipants: 67}
	assert.InDelta(t, 67.0, hackathon.ProgressPercentage(), 0.0001)

	hackathon.MaxParticipants = 0
	assert.Equal(t, 0.0, hackathon.ProgressPercentage())
}

func TestHackathonStatusTransitions(t *testing.T) {
	assert.True(t, HackathonStatusDraft.CanTransitionTo(HackathonStatusOpen))
	assert.True(t, HackathonStatusOpen.CanTransitionTo(HackathonStatusInProgress))
	assert.True(t, HackathonStatusInProgress.CanTransitionTo(HackathonStatusCompleted))
	assert.True(t, HackathonStatusOpen.CanTransitionTo(HackathonStatusCancelled))

	assert.False(t, HackathonStatusDraft.CanTransitionTo(HackathonStatusCompleted))
	assert.False(t, HackathonStatusCompleted.CanTransitionTo(HackathonStatusOpen))
	assert.False(t, HackathonStatusCancelled.CanTransitionTo(HackathonStatusOpen))
}

func TestParseHackathonStatus(t *testing.T) {
	status, ok := ParseHackathonStatus("in_progress")
	assert.True(t, ok)
	assert.Equal(t, HackathonStatusInProgress, status)

	_, ok = ParseHackathonStatus("unknown")
	assert.False(t, ok)
}
