package services

import (
	"crypto/sha256"
	"encoding/hex"
)

// GenerateInviteHash derives the shareable join credential for a server: the
// hex SHA-256 digest of ownerID and serverID concatenated. No secret or salt
// is mixed in, so anyone who knows both IDs can recompute it.
func GenerateInviteHash(ownerID, serverID string) string {
	sum := sha256.Sum256([]byte(ownerID + serverID))
	return hex.EncodeToString(sum[:])
}

// VerifyInviteHash recomputes the invite hash and compares.
func VerifyInviteHash(hash, ownerID, serverID string) bool {
	return hash == GenerateInviteHash(ownerID, serverID)
}
