package models

import "time"

// Reaction identity is the (userId, emoji) pair within a message; re-adding
// the same pair overwrites instead of duplicating.
type Reaction struct {
	MessageID string     `json:"messageId"`
	UserID    string     `json:"userId"`
	Emoji     string     `json:"emoji"`
	CreatedAt *time.Time `json:"createdAt"`
}

// ReactionGroup aggregates the reactions of one emoji on a message.
type ReactionGroup struct {
	Count int      `json:"count"`
	Users []string `json:"users"`
}

// ReactionsSummary maps emoji to its aggregated reactions.
type ReactionsSummary map[string]ReactionGroup
