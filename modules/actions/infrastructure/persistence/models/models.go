package models

import "time"

// Action is one row of the joined actions projection.
type Action struct {
	ID                     int64
	BusinessID             *int64
	BusinessName           *string
	Process                *string
	ProcessDescription     *string
	Description            string
	DueAt                  time.Time
	CompletedAt            *time.Time
	StatusSlug             string
	StatusName             *string
	AssignedUserID         *int64
	FirstName              *string
	LastName               *string
	ProfilePictureFilename *string
	CreatedAt              time.Time
}

type Status struct {
	Slug string
	Name string
}
