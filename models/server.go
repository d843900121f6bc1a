package models

import "time"

// Log entry types and actions recorded in a server audit trail.
const (
	LogTypeServer     = "server"
	LogTypeChannel    = "channel"
	LogTypeMessage    = "message"
	LogTypeInvitation = "invitation"

	LogActionCreated = "created"
	LogActionDeleted = "deleted"
	LogActionUpdated = "updated"
	LogActionJoined  = "joined"
	LogActionInvited = "invited"
)

// Server is a messaging community. MemberIDs and Logs are internal and never
// serialized into list responses; create returns the full record once.
type Server struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	OwnerID   string     `json:"ownerId"`
	MemberIDs []string   `json:"memberIds"`
	ImageURL  *string    `json:"imageUrl"`
	CreatedAt *time.Time `json:"createdAt"`
}

// PublicServer is the reduced shape exposed by server listings.
type PublicServer struct {
	ID       string  `json:"id"`
	OwnerID  string  `json:"ownerId"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

// LogEntry is an immutable audit record embedded in a server document.
type LogEntry struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Action    string                 `json:"action"`
	UserID    string                 `json:"userId"`
	TargetID  string                 `json:"targetId,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp *time.Time             `json:"timestamp"`
}

// NewLogEntry carries the caller-supplied part of a log entry; id and
// timestamp are assigned on append.
type NewLogEntry struct {
	Type     string
	Action   string
	UserID   string
	TargetID string
	Metadata map[string]interface{}
}

// CreateServerInput are the parameters for creating a server. MemberIDs may be
// empty; the owner is always included.
type CreateServerInput struct {
	Name      string
	OwnerID   string
	ImageURL  *string
	MemberIDs []string
}

// LogFilter narrows a server log query. Zero values mean "no filter".
type LogFilter struct {
	Type   string
	UserID string
	Limit  int
}

// Invite is the response to an invite link request.
type Invite struct {
	Hash       string `json:"hash"`
	ServerID   string `json:"serverId"`
	InviterID  string `json:"inviterId"`
	InviteLink string `json:"inviteLink"`
}
