package models

import "time"

type Message struct {
	ID              string     `json:"id"`
	ChannelID       string     `json:"channelId"`
	AuthorID        string     `json:"authorId"`
	AuthorName      string     `json:"authorName"`
	AuthorAvatarURL *string    `json:"authorAvatarUrl"`
	Content         string     `json:"content"`
	CreatedAt       *time.Time `json:"createdAt"`
}

// CreateMessageInput are the parameters for posting a message to a channel.
type CreateMessageInput struct {
	AuthorID        string
	AuthorName      string
	AuthorAvatarURL *string
	Content         string
}
