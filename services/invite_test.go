package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInviteHashRoundTrip(t *testing.T) {
	hash := GenerateInviteHash("owner1", "server1")
	assert.Len(t, hash, 64)
	assert.True(t, VerifyInviteHash(hash, "owner1", "server1"))
}

func TestInviteHashDeterministic(t *testing.T) {
	assert.Equal(t, GenerateInviteHash("o", "s"), GenerateInviteHash("o", "s"))
}

func TestInviteHashRejectsChangedArguments(t *testing.T) {
	hash := GenerateInviteHash("owner1", "server1")
	assert.False(t, VerifyInviteHash(hash, "owner2", "server1"))
	assert.False(t, VerifyInviteHash(hash, "owner1", "server2"))
	assert.False(t, VerifyInviteHash("bogus", "owner1", "server1"))
}
