package action

import (
	"context"
	"time"
)

const (
	StatusOutstanding = "outstanding"
	StatusCompleted   = "completed"
)

type Business struct {
	ID   int64
	Name *string
}

type User struct {
	ID                     int64
	FirstName              *string
	LastName               *string
	ProfilePictureFilename *string
}

// FullName joins the non-empty name parts.
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	first, last := "", ""
	if u.FirstName != nil {
		first = *u.FirstName
	}
	if u.LastName != nil {
		last = *u.LastName
	}
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

type Status struct {
	Slug string
	Name string
}

type Process struct {
	Code        string
	Description string
}

// Action is a row of the actions list with its related records denormalized.
type Action struct {
	ID                 int64
	BusinessID         *int64
	Business           *Business
	Process            *string
	ProcessDescription *string
	Description        string
	DueAt              time.Time
	CompletedAt        *time.Time
	StatusSlug         string
	StatusName         *string
	AssignedUserID     *int64
	AssignedUser       *User
	CreatedAt          time.Time
}

func (a *Action) IsCompleted() bool {
	return a.StatusSlug == StatusCompleted
}

// BusinessName is empty when the action has no business or the business has no name.
func (a *Action) BusinessName() string {
	if a.Business == nil || a.Business.Name == nil {
		return ""
	}
	return *a.Business.Name
}

// ProcessLabel prefers the process description over its raw code.
func (a *Action) ProcessLabel() string {
	if a.ProcessDescription != nil && *a.ProcessDescription != "" {
		return *a.ProcessDescription
	}
	if a.Process != nil {
		return *a.Process
	}
	return ""
}

func (a *Action) StatusLabel() string {
	if a.StatusName != nil {
		return *a.StatusName
	}
	return ""
}

type FindParams struct {
	Limit    int
	Offset   int
	SortBy   SortBy
	Search   string
	Status   string
	Assigned string
}

type Repository interface {
	List(ctx context.Context, params *FindParams) ([]*Action, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	CountByStatus(ctx context.Context, slug string) (int64, error)
	Statuses(ctx context.Context) ([]Status, error)
	Create(ctx context.Context, a *Action) error
}
