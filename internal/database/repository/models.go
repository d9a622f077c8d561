package repository

import "time"

// CrewMember represents a crew row.
type CrewMember struct {
	ID        string
	Name      string
	Role      string
	Status    string
	SortOrder int
}

// DoorRequest represents a door_requests row.
type DoorRequest struct {
	ID          string
	RequestedBy string
	Outcome     string
	Message     string
	RequestedAt time.Time
}
