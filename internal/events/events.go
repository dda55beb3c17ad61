package events

import "github.com/archilink/jobboard/internal/entities"

var AuthStateChangedTopic = "AuthStateChangedEvent"

// AuthStateChanged carries the full replacement identity. A nil User means
// the previous identity signed out.
type AuthStateChanged struct {
	User *entities.Identity
}

var JobPostedTopic = "JobPostedEvent"

type JobPosted struct {
	JobID    string
	Title    string
	Company  string
	Featured bool
}
