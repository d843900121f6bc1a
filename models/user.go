package models

import "time"

// User is the public shape of a chat user. ProfilePhotoURL and CreatedAt are
// nullable in responses, so both are pointers.
type User struct {
	ID              string     `json:"id"`
	Username        string     `json:"username"`
	ProfilePhotoURL *string    `json:"profilePhotoUrl"`
	CreatedAt       *time.Time `json:"createdAt"`
}
