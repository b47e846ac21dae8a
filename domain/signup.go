// Package domain contains the core raid event concepts: sign-ups, rosters,
// and the grouping rules applied before anything reaches the chat client.
package domain

// SignUp is a single registration entry as returned by the Raid-Helper API.
type SignUp struct {
	UserID    string `json:"userId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	ClassName string `json:"className"`
}

// Event is the subset of a Raid-Helper event this bot consumes.
type Event struct {
	Title   string   `json:"title"`
	SignUps []SignUp `json:"signUps"`
}

// Participant is a committed sign-up kept in a roster.
type Participant struct {
	UserID    string
	Name      string
	ClassName string
}
