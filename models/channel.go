package models

import "time"

// ChannelTypeText is the only channel type; voice never shipped.
const ChannelTypeText = "text"

type Channel struct {
	ID        string     `json:"id"`
	ServerID  string     `json:"serverId"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	CreatedAt *time.Time `json:"createdAt"`
}
