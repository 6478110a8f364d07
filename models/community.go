package models

// Community is derived from a community identifier on every login; it is never stored.
type Community struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Type CommunityType `json:"type"`
}

// Session is what a successful login hands back to the client. The server keeps no copy:
// every later request names its community explicitly.
type Session struct {
	User      User      `json:"user"`
	Community Community `json:"community"`
}
